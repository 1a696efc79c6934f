package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/creditbridge/credit-service/internal/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route of the service
func NewRouter(h *Handler, log *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(instrument(log))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ping", h.Ping).Methods("GET")

	api.HandleFunc("/users/data", h.SaveUserData).Methods("POST")
	api.HandleFunc("/users/{userId}/data", h.GetUserData).Methods("GET")
	api.HandleFunc("/users/{userId}/credit-score", h.UpdateCreditScore).Methods("POST")
	api.HandleFunc("/users/{userId}/credit-history", h.GetCreditHistory).Methods("GET")
	api.HandleFunc("/calculate-credit-score", h.CalculateCreditScore).Methods("POST")

	api.HandleFunc("/analytics/{userId}/generate", h.GenerateAnalytics).Methods("POST")
	api.HandleFunc("/analytics/{userId}", h.GetAnalytics).Methods("GET")
	api.HandleFunc("/loan-offers/{userId}", h.GetLoanOffers).Methods("GET")

	api.HandleFunc("/stats", h.GetSystemStats).Methods("GET")
	api.HandleFunc("/key-rate", h.GetKeyRate).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// instrument logs each request and records request metrics
func instrument(log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			elapsed := time.Since(start)
			metrics.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
			metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
			log.Debugf("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
		})
	}
}
