package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/creditbridge/credit-service/internal/models"
	"github.com/creditbridge/credit-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// RateSource supplies the benchmark key rate
type RateSource interface {
	GetKeyRate() (float64, error)
}

type Handler struct {
	svc   *service.Service
	rates RateSource
	log   *logrus.Logger
}

func NewHandler(svc *service.Service, rates RateSource, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, rates: rates, log: log}
}

// Ping answers a liveness probe
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "ping"})
}

// GenerateAnalytics runs the scoring pipeline for a stored user
func (h *Handler) GenerateAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	analytics, err := h.svc.GenerateAnalytics(r.Context(), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Generate analytics error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate analytics")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"analytics": analytics,
	})
}

// GetAnalytics returns the previously generated analytics snapshot
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	analytics, err := h.svc.GetAnalytics(r.Context(), userID)
	if errors.Is(err, service.ErrAnalyticsNotFound) {
		respondError(w, http.StatusNotFound, "Analytics not found. Please generate analytics first.")
		return
	}
	if err != nil {
		h.log.Errorf("Get analytics error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get analytics")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"analytics": analytics,
	})
}

// GetLoanOffers returns a user's current (unexpired) loan offers
func (h *Handler) GetLoanOffers(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	offers, err := h.svc.GetLoanOffers(r.Context(), userID)
	if errors.Is(err, service.ErrOffersNotFound) {
		respondError(w, http.StatusNotFound, "No current loan offers. Please generate analytics first.")
		return
	}
	if err != nil {
		h.log.Errorf("Get loan offers error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get loan offers")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"offers":  offers,
	})
}

// SaveUserData creates or updates a user profile
func (h *Handler) SaveUserData(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.svc.SaveProfile(r.Context(), &profile)
	if err != nil {
		h.log.Errorf("Save user data error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save user data")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User data saved successfully",
		"user":    saved,
	})
}

// GetUserData returns a user profile by ID
func (h *Handler) GetUserData(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := h.svc.GetProfile(r.Context(), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Get user data error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch user data")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

type updateScoreRequest struct {
	Score   int                  `json:"score"`
	Factors *models.ScoreFactors `json:"factors"`
}

// UpdateCreditScore appends a score entry to a user's history
func (h *Handler) UpdateCreditScore(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req updateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Score == 0 {
		respondError(w, http.StatusBadRequest, "User ID and score are required")
		return
	}

	entry, history, err := h.svc.UpdateCreditScore(r.Context(), userID, req.Score, req.Factors)
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Update credit score error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update credit score")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Credit score updated successfully",
		"newScore": entry,
		"history":  history,
	})
}

// GetCreditHistory returns the trailing months of a user's score history
func (h *Handler) GetCreditHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	months := 12
	if v := r.URL.Query().Get("months"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid months parameter")
			return
		}
		months = parsed
	}

	history, currentScore, trend, err := h.svc.GetCreditHistory(r.Context(), userID, months)
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorf("Get credit history error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch credit history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"history":      history,
		"currentScore": currentScore,
		"trend":        trend,
	})
}

type calculateScoreRequest struct {
	FinancialData     *models.FinancialData    `json:"financialData"`
	TraditionalCredit models.TraditionalCredit `json:"traditionalCredit"`
}

// CalculateCreditScore runs the stateless calculator over a raw payload
func (h *Handler) CalculateCreditScore(w http.ResponseWriter, r *http.Request) {
	var req calculateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FinancialData == nil {
		respondError(w, http.StatusBadRequest, "Financial data is required")
		return
	}

	result := h.svc.CalculateScore(*req.FinancialData, req.TraditionalCredit)
	respondJSON(w, http.StatusOK, result)
}

// GetSystemStats summarizes the current user base
func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.SystemStats(r.Context())
	if err != nil {
		h.log.Errorf("Get system stats error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get system stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// GetKeyRate returns the current benchmark key rate
func (h *Handler) GetKeyRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rates.GetKeyRate()
	if err != nil {
		h.log.Errorf("Get key rate error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get key rate")
		return
	}
	respondJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
