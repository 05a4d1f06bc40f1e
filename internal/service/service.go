// Package service exposes the expense analysis engine and record CRUD over a
// JSON REST API.
package service

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/finance-coach/backend/internal/engine"
	"github.com/finance-coach/backend/internal/store"
)

// FinanceService serves the expense, asset and liability endpoints plus the
// analysis endpoints backed by the engine.
type FinanceService struct {
	store         store.Store
	monthlyIncome float64
}

// NewFinanceService creates a service over the given store. monthlyIncome
// feeds the cash-flow ratio; zero or negative selects the engine default.
func NewFinanceService(s store.Store, monthlyIncome float64) *FinanceService {
	if monthlyIncome <= 0 {
		monthlyIncome = engine.DefaultMonthlyIncome
	}
	return &FinanceService{
		store:         s,
		monthlyIncome: monthlyIncome,
	}
}

// RegisterRoutes attaches all handlers to the mux.
func (s *FinanceService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("PUT /api/expenses/{id}", s.handleUpdateExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/ai-insights", s.handleAIInsights)

	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/summary/monthly", s.handleMonthlySummary)

	mux.HandleFunc("POST /api/assets", s.handleCreateAsset)
	mux.HandleFunc("GET /api/assets", s.handleListAssets)
	mux.HandleFunc("DELETE /api/assets/{id}", s.handleDeleteAsset)
	mux.HandleFunc("POST /api/liabilities", s.handleCreateLiability)
	mux.HandleFunc("GET /api/liabilities", s.handleListLiabilities)
	mux.HandleFunc("DELETE /api/liabilities/{id}", s.handleDeleteLiability)
	mux.HandleFunc("GET /api/networth", s.handleNetWorth)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleHealth)
}

func (s *FinanceService) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps engine and store errors to HTTP statuses. Validation
// failures surface as 400 with the taxonomy code, missing records as 404,
// anything else as 500 with the detail kept in the server log.
func respondError(w http.ResponseWriter, component string, err error) {
	var analysisErr *engine.AnalysisError
	switch {
	case errors.As(err, &analysisErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": analysisErr.Message,
			"code":  string(analysisErr.Code),
		})
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	default:
		log.Printf("[%s] internal error: %v", component, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
