package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/creditbridge/credit-service/internal/metrics"
	"github.com/creditbridge/credit-service/internal/models"
	"github.com/creditbridge/credit-service/internal/repository"
	"github.com/creditbridge/credit-service/internal/scoring"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sentinel errors surfaced to the HTTP layer as 404s
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAnalyticsNotFound = errors.New("analytics not found")
	ErrOffersNotFound    = errors.New("no current loan offers")
)

// seedScore is the assumed current score when backfilling history for a
// profile that arrives without one
const seedScore = 723

// Store is the persistence surface the service depends on
type Store interface {
	SaveProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	SaveAnalytics(ctx context.Context, userID string, analytics *models.Analytics) error
	GetAnalytics(ctx context.Context, userID string) (*models.Analytics, error)
	AppendCreditHistory(ctx context.Context, userID string, entry models.CreditHistoryEntry) error
	GetCreditHistory(ctx context.Context, userID string, months int) ([]models.CreditHistoryEntry, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	LatestScores(ctx context.Context) (map[string]int, error)
	SaveSystemStats(ctx context.Context, stats *models.SystemStats) error
}

// OfferCache holds generated loan offers until they expire
type OfferCache interface {
	Put(ctx context.Context, userID string, offers []models.LoanOffer) error
	Get(ctx context.Context, userID string) ([]models.LoanOffer, bool, error)
}

// Notifier delivers score reports to users
type Notifier interface {
	SendScoreReport(to, name string, score int, riskProfile string, recommendations []string) error
}

// Service handles business logic
type Service struct {
	store    Store
	offers   OfferCache
	notifier Notifier // nil when SMTP is not configured
	log      *logrus.Logger

	now     func() time.Time
	newRand func() *rand.Rand
}

// NewService initializes a new service
func NewService(store Store, offers OfferCache, notifier Notifier, log *logrus.Logger) *Service {
	return &Service{
		store:    store,
		offers:   offers,
		notifier: notifier,
		log:      log,
		now:      time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// GenerateAnalytics runs the full scoring pipeline for a stored profile,
// persists the snapshot, caches the loan offers, and records the new score
// in the user's history.
func (s *Service) GenerateAnalytics(ctx context.Context, userID string) (*models.Analytics, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	rng := s.newRand()

	factors := scoring.Factors(profile.FinancialData, profile.TraditionalCredit, now)
	result := scoring.Blend(factors, profile.TraditionalCredit)
	analysis := scoring.Analyze(profile.FinancialData, profile.TraditionalCredit, result)
	offers := scoring.GenerateOffers(result.Score)
	history := scoring.GenerateHistory(result.Score, now, rng)

	analytics := &models.Analytics{
		CurrentScore:   result,
		HistoricalData: history,
		Analysis:       analysis,
		LoanOffers:     offers,
		GeneratedAt:    now.Format(time.RFC3339),
	}

	if err := s.store.SaveAnalytics(ctx, userID, analytics); err != nil {
		return nil, err
	}
	if err := s.offers.Put(ctx, userID, offers); err != nil {
		// offers are also embedded in the analytics snapshot
		s.log.Warnf("Failed to cache loan offers for %s: %v", userID, err)
	}

	entry := models.CreditHistoryEntry{
		Date:    now.Format("2006-01-02"),
		Score:   result.Score,
		Factors: result.Factors,
	}
	if err := s.store.AppendCreditHistory(ctx, userID, entry); err != nil {
		return nil, err
	}

	profile.CreditHistory = append(profile.CreditHistory, entry)
	profile.Analytics = summarize(analysis)
	profile.UpdatedAt = now.Format(time.RFC3339)
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	metrics.ScoresGenerated.Inc()
	s.log.Infof("Analytics generated for user %s: score %d, risk %s", userID, result.Score, analysis.RiskProfile)

	if s.notifier != nil && profile.PersonalInfo.Email != "" {
		if err := s.notifier.SendScoreReport(
			profile.PersonalInfo.Email,
			profile.PersonalInfo.FirstName,
			result.Score,
			analysis.RiskProfile,
			analysis.Recommendations,
		); err != nil {
			s.log.Warnf("Failed to send score report to %s: %v", profile.PersonalInfo.Email, err)
		}
	}

	return analytics, nil
}

// GetAnalytics returns the stored analytics snapshot for a user
func (s *Service) GetAnalytics(ctx context.Context, userID string) (*models.Analytics, error) {
	analytics, err := s.store.GetAnalytics(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAnalyticsNotFound
	}
	return analytics, err
}

// GetLoanOffers returns a user's cached offers; expired offers read as absent
func (s *Service) GetLoanOffers(ctx context.Context, userID string) ([]models.LoanOffer, error) {
	offers, ok, err := s.offers.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOffersNotFound
	}
	return offers, nil
}

// SaveProfile creates or replaces a user profile. New profiles get a minted
// ID when absent and a backfilled 12-month score history.
func (s *Service) SaveProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	now := s.now()

	if profile.UserID == "" {
		profile.UserID = uuid.NewString()
	}

	var seeded []models.CreditHistoryEntry
	existing, err := s.store.GetProfile(ctx, profile.UserID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
		if len(profile.CreditHistory) == 0 {
			profile.CreditHistory = existing.CreditHistory
		}
	case errors.Is(err, repository.ErrNotFound):
		profile.CreatedAt = now.Format(time.RFC3339)
		if len(profile.CreditHistory) == 0 {
			profile.CreditHistory = scoring.GenerateSeedHistory(seedScore, now, s.newRand())
		}
		seeded = profile.CreditHistory
	default:
		return nil, err
	}

	profile.UpdatedAt = now.Format(time.RFC3339)
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	// history rows reference the profile row, so the profile is saved first
	for _, entry := range seeded {
		if err := s.store.AppendCreditHistory(ctx, profile.UserID, entry); err != nil {
			return nil, err
		}
	}

	s.log.Infof("Profile saved for user %s", profile.UserID)
	return profile, nil
}

// GetProfile retrieves a user profile by ID
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return profile, err
}

// UpdateCreditScore appends a score entry to a user's history and returns
// the new entry plus the trailing 12 months. Omitted factors fall back to
// representative defaults.
func (s *Service) UpdateCreditScore(ctx context.Context, userID string, score int, factors *models.ScoreFactors) (models.CreditHistoryEntry, []models.CreditHistoryEntry, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.CreditHistoryEntry{}, nil, ErrUserNotFound
	}
	if err != nil {
		return models.CreditHistoryEntry{}, nil, err
	}

	if factors == nil {
		factors = &models.ScoreFactors{
			RentPayments:      80,
			UtilityPayments:   75,
			CashFlow:          65,
			EmploymentHistory: 85,
		}
	}

	now := s.now()
	entry := models.CreditHistoryEntry{
		Date:    now.Format("2006-01-02"),
		Score:   score,
		Factors: *factors,
	}

	if err := s.store.AppendCreditHistory(ctx, userID, entry); err != nil {
		return models.CreditHistoryEntry{}, nil, err
	}

	profile.CreditHistory = append(profile.CreditHistory, entry)
	profile.UpdatedAt = now.Format(time.RFC3339)
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return models.CreditHistoryEntry{}, nil, err
	}

	history, err := s.store.GetCreditHistory(ctx, userID, 12)
	if err != nil {
		return models.CreditHistoryEntry{}, nil, err
	}

	s.log.Infof("Credit score updated for user %s: %d", userID, score)
	return entry, history, nil
}

// GetCreditHistory returns the trailing months of score history together
// with the current score and the delta between the last two entries.
func (s *Service) GetCreditHistory(ctx context.Context, userID string, months int) ([]models.CreditHistoryEntry, int, int, error) {
	if _, err := s.store.GetProfile(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, 0, ErrUserNotFound
		}
		return nil, 0, 0, err
	}

	history, err := s.store.GetCreditHistory(ctx, userID, months)
	if err != nil {
		return nil, 0, 0, err
	}

	currentScore := 0
	trend := 0
	if len(history) > 0 {
		currentScore = history[len(history)-1].Score
	}
	if len(history) > 1 {
		trend = history[len(history)-1].Score - history[len(history)-2].Score
	}
	return history, currentScore, trend, nil
}

// CalculateScore runs the stateless calculator over a raw payload
func (s *Service) CalculateScore(fd models.FinancialData, tc models.TraditionalCredit) models.ScoreCalculation {
	return scoring.Calculate(fd, tc, s.now())
}

// SystemStats summarizes the current user base
func (s *Service) SystemStats(ctx context.Context) (*models.SystemStats, error) {
	ids, err := s.store.ListUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.store.LatestScores(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, id := range ids {
		total += scores[id]
	}
	average := 0
	if len(ids) > 0 {
		average = total / len(ids)
	}

	return &models.SystemStats{
		TotalUsers:   len(ids),
		AverageScore: average,
		ActiveUsers:  len(ids),
		DataPoints:   len(ids) * 4,
		CapturedAt:   s.now().Format(time.RFC3339),
	}, nil
}

// SnapshotSystemStats computes and persists a stats snapshot; run nightly
func (s *Service) SnapshotSystemStats(ctx context.Context) error {
	stats, err := s.SystemStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute system stats: %w", err)
	}
	if err := s.store.SaveSystemStats(ctx, stats); err != nil {
		return err
	}
	s.log.Infof("System stats snapshot: %d users, average score %d", stats.TotalUsers, stats.AverageScore)
	return nil
}

func summarize(analysis models.AnalysisResult) *models.AnalyticsSummary {
	summary := &models.AnalyticsSummary{
		Recommendations: analysis.Recommendations,
		RiskProfile:     analysis.RiskProfile,
		LoanEligibility: analysis.LoanEligibility,
	}
	for _, f := range analysis.Strengths {
		summary.Strengths = append(summary.Strengths, f.Title)
	}
	for _, f := range analysis.Weaknesses {
		summary.Weaknesses = append(summary.Weaknesses, f.Title)
	}
	return summary
}
