package service

import (
	"encoding/json"
	"net/http"

	"github.com/finance-coach/backend/internal/engine"
)

// analyzeRequest is the payload for the analysis endpoints: an expense
// snapshot plus an optional monthly income override.
type analyzeRequest struct {
	Expenses      []engine.RawExpense `json:"expenses"`
	MonthlyIncome float64             `json:"monthlyIncome,omitempty"`
}

// advice is the advice envelope of the analyze response.
type advice struct {
	KeyInsights     []engine.Insight                     `json:"keyInsights"`
	Recommendations []engine.Recommendation              `json:"recommendations"`
	InvestmentIdeas map[string]engine.InvestmentCategory `json:"investmentIdeas"`
	Challenges      []engine.Challenge                   `json:"challenges"`
	PassiveIncome   []engine.PassiveIncomeIdea           `json:"passiveIncome"`
	CashFlow        engine.CashFlowAnalysis              `json:"cashFlowAnalysis"`
	Predictions     engine.Predictions                   `json:"predictions"`
	Savings         engine.Savings                       `json:"savings"`
}

// analyzeResponse is the classic analysis envelope: patterns and habits at
// the top level, everything else folded into advice.
type analyzeResponse struct {
	Patterns engine.SpendingPatterns `json:"patterns"`
	Habits   engine.Habits           `json:"habits"`
	Advice   advice                  `json:"advice"`
}

// handleAnalyze runs the full analysis over a submitted snapshot and returns
// the patterns/habits/advice envelope.
func (s *FinanceService) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	report, ok := s.analyzeFromRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Patterns: report.Patterns,
		Habits:   report.Habits,
		Advice: advice{
			KeyInsights:     report.KeyInsights,
			Recommendations: report.Recommendations,
			InvestmentIdeas: report.InvestmentIdeas,
			Challenges:      report.Challenges,
			PassiveIncome:   report.PassiveIncome,
			CashFlow:        report.CashFlow,
			Predictions:     report.Predictions,
			Savings:         report.Savings,
		},
	})
}

// handleAIInsights runs the same analysis but returns the flat engine report.
func (s *FinanceService) handleAIInsights(w http.ResponseWriter, r *http.Request) {
	report, ok := s.analyzeFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// analyzeFromRequest decodes and validates the snapshot and runs the engine.
// On failure it writes the error response and returns ok=false.
func (s *FinanceService) analyzeFromRequest(w http.ResponseWriter, r *http.Request) (engine.Report, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return engine.Report{}, false
	}

	expenses, err := engine.ParseExpenses(req.Expenses)
	if err != nil {
		respondError(w, "Analyze", err)
		return engine.Report{}, false
	}

	income := req.MonthlyIncome
	if income <= 0 {
		income = s.monthlyIncome
	}

	return engine.Analyze(expenses, income), true
}
