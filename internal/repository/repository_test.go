package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/creditbridge/credit-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID: "user-1",
		PersonalInfo: models.PersonalInfo{
			FirstName: "Ada",
			Email:     "ada@example.com",
		},
		TraditionalCredit: models.TraditionalCredit{HasCredit: models.CreditNo},
	}
}

func TestSaveProfile(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec("INSERT INTO scoring.profiles").
		WithArgs("user-1", "ada@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveProfile(context.Background(), testProfile())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile(t *testing.T) {
	repo, mock := setupMockDB(t)

	doc, err := json.Marshal(testProfile())
	require.NoError(t, err)

	mock.ExpectQuery("SELECT doc FROM scoring.profiles").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(doc))

	profile, err := repo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "ada@example.com", profile.PersonalInfo.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileNotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT doc FROM scoring.profiles").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	_, err := repo.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveAndGetAnalytics(t *testing.T) {
	repo, mock := setupMockDB(t)

	analytics := &models.Analytics{
		CurrentScore: models.ScoreResult{Score: 712},
		GeneratedAt:  "2026-08-31T12:00:00Z",
	}

	mock.ExpectExec("INSERT INTO scoring.analytics").
		WithArgs("user-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SaveAnalytics(context.Background(), "user-1", analytics))

	doc, err := json.Marshal(analytics)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT doc FROM scoring.analytics").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(doc))

	loaded, err := repo.GetAnalytics(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, analytics, loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAnalyticsNotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT doc FROM scoring.analytics").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	_, err := repo.GetAnalytics(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendCreditHistory(t *testing.T) {
	repo, mock := setupMockDB(t)

	entry := models.CreditHistoryEntry{
		Date:    "2026-08-31",
		Score:   701,
		Factors: models.ScoreFactors{RentPayments: 90},
	}

	mock.ExpectExec("INSERT INTO scoring.credit_history").
		WithArgs("user-1", "2026-08-31", 701, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.AppendCreditHistory(context.Background(), "user-1", entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCreditHistory(t *testing.T) {
	repo, mock := setupMockDB(t)

	factors, _ := json.Marshal(models.ScoreFactors{RentPayments: 85, UtilityPayments: 80})
	rows := sqlmock.NewRows([]string{"entry_date", "score", "factors"}).
		AddRow("2026-07-31", 690, factors).
		AddRow("2026-08-31", 701, factors)

	mock.ExpectQuery("SELECT entry_date, score, factors").
		WithArgs("user-1", 12).
		WillReturnRows(rows)

	entries, err := repo.GetCreditHistory(context.Background(), "user-1", 12)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 690, entries[0].Score)
	assert.Equal(t, 701, entries[1].Score)
	assert.Equal(t, 85, entries[1].Factors.RentPayments)
}

func TestListUserIDs(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT user_id FROM scoring.profiles").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("a").AddRow("b"))

	ids, err := repo.ListUserIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestLatestScores(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT DISTINCT ON").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "score"}).AddRow("a", 700).AddRow("b", 650))

	scores, err := repo.LatestScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 700, "b": 650}, scores)
}

func TestSaveSystemStats(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec("INSERT INTO scoring.system_stats").
		WithArgs(10, 684, 10, 40).
		WillReturnResult(sqlmock.NewResult(1, 1))

	stats := &models.SystemStats{TotalUsers: 10, AverageScore: 684, ActiveUsers: 10, DataPoints: 40}
	require.NoError(t, repo.SaveSystemStats(context.Background(), stats))
	assert.NoError(t, mock.ExpectationsWereMet())
}
