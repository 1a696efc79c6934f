package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/creditbridge/credit-service/internal/models"
)

// ErrNotFound is returned when the requested document does not exist
var ErrNotFound = errors.New("not found")

// Repository provides database operations. Profiles and analytics snapshots
// are stored as JSONB documents keyed by user ID; credit history entries are
// rows so the trailing window can be queried cheaply.
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveProfile inserts or replaces a user profile document
func (r *Repository) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	query := `
		INSERT INTO scoring.profiles (user_id, email, doc, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email, doc = EXCLUDED.doc, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, profile.UserID, profile.PersonalInfo.Email, doc); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user profile by ID
func (r *Repository) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var doc []byte
	query := `SELECT doc FROM scoring.profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	profile := &models.UserProfile{}
	if err := json.Unmarshal(doc, profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return profile, nil
}

// SaveAnalytics inserts or replaces the analytics snapshot for a user
func (r *Repository) SaveAnalytics(ctx context.Context, userID string, analytics *models.Analytics) error {
	doc, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics: %w", err)
	}
	query := `
		INSERT INTO scoring.analytics (user_id, doc, generated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE
		SET doc = EXCLUDED.doc, generated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, userID, doc); err != nil {
		return fmt.Errorf("failed to save analytics: %w", err)
	}
	return nil
}

// GetAnalytics retrieves the stored analytics snapshot for a user
func (r *Repository) GetAnalytics(ctx context.Context, userID string) (*models.Analytics, error) {
	var doc []byte
	query := `SELECT doc FROM scoring.analytics WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find analytics: %w", err)
	}
	analytics := &models.Analytics{}
	if err := json.Unmarshal(doc, analytics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analytics: %w", err)
	}
	return analytics, nil
}

// AppendCreditHistory adds one score entry to a user's history
func (r *Repository) AppendCreditHistory(ctx context.Context, userID string, entry models.CreditHistoryEntry) error {
	factors, err := json.Marshal(entry.Factors)
	if err != nil {
		return fmt.Errorf("failed to marshal factors: %w", err)
	}
	query := `
		INSERT INTO scoring.credit_history (user_id, entry_date, score, factors, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)`
	if _, err := r.db.ExecContext(ctx, query, userID, entry.Date, entry.Score, factors); err != nil {
		return fmt.Errorf("failed to append credit history: %w", err)
	}
	return nil
}

// GetCreditHistory returns the trailing months of a user's score history,
// oldest first.
func (r *Repository) GetCreditHistory(ctx context.Context, userID string, months int) ([]models.CreditHistoryEntry, error) {
	query := `
		SELECT entry_date, score, factors
		FROM (
			SELECT entry_date, score, factors, created_at
			FROM scoring.credit_history
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit history: %w", err)
	}
	defer rows.Close()

	var entries []models.CreditHistoryEntry
	for rows.Next() {
		var entry models.CreditHistoryEntry
		var factors []byte
		if err := rows.Scan(&entry.Date, &entry.Score, &factors); err != nil {
			return nil, fmt.Errorf("failed to scan credit history: %w", err)
		}
		if err := json.Unmarshal(factors, &entry.Factors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal factors: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credit history: %w", err)
	}
	return entries, nil
}

// ListUserIDs returns every known profile ID
func (r *Repository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM scoring.profiles ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user ids: %w", err)
	}
	return ids, nil
}

// LatestScores returns each user's most recent recorded score
func (r *Repository) LatestScores(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT DISTINCT ON (user_id) user_id, score
		FROM scoring.credit_history
		ORDER BY user_id, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]int)
	for rows.Next() {
		var id string
		var score int
		if err := rows.Scan(&id, &score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores[id] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read latest scores: %w", err)
	}
	return scores, nil
}

// SaveSystemStats records a system stats snapshot
func (r *Repository) SaveSystemStats(ctx context.Context, stats *models.SystemStats) error {
	query := `
		INSERT INTO scoring.system_stats (total_users, average_score, active_users, data_points, captured_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)`
	if _, err := r.db.ExecContext(ctx, query, stats.TotalUsers, stats.AverageScore, stats.ActiveUsers, stats.DataPoints); err != nil {
		return fmt.Errorf("failed to save system stats: %w", err)
	}
	return nil
}
