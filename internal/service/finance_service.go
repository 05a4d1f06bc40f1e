package service

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/engine"
	"github.com/finance-coach/backend/internal/model"
)

// listAllPageSize is used when an endpoint needs the full history rather
// than one page.
const listAllPageSize = 10000

// expenseRequest is the create/update payload for an expense. Amount is a
// json.Number so both `12.5` and `"12.5"` decode.
type expenseRequest struct {
	UserID      string      `json:"userId"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
}

func (r expenseRequest) raw() engine.RawExpense {
	return engine.RawExpense{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
	}
}

// handleCreateExpense validates the record, assigns an ID and a category from
// the keyword matcher, and stores it.
func (s *FinanceService) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed, err := engine.ParseExpenses([]engine.RawExpense{req.raw()})
	if err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	now := time.Now().UTC()
	expense := &model.Expense{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Description: parsed[0].Description,
		Amount:      parsed[0].Amount,
		Date:        parsed[0].Date,
		Category:    engine.Categorize(parsed[0].Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateExpense(r.Context(), expense); err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

// handleListExpenses returns one page of expenses, newest first. Optional
// query params: userId, startDate, endDate, pageSize, pageToken.
func (s *FinanceService) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var startDate, endDate *time.Time
	if v := q.Get("startDate"); v != "" {
		t, err := engine.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startDate")
			return
		}
		startDate = &t
	}
	if v := q.Get("endDate"); v != "" {
		t, err := engine.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endDate")
			return
		}
		endDate = &t
	}

	pageSize := int32(0)
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid pageSize")
			return
		}
		pageSize = int32(n)
	}

	expenses, nextPageToken, err := s.store.ListExpenses(r.Context(), q.Get("userId"), startDate, endDate, pageSize, q.Get("pageToken"))
	if err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"expenses":      expenses,
		"nextPageToken": nextPageToken,
	})
}

// handleUpdateExpense replaces the editable fields of an expense and
// recomputes its category.
func (s *FinanceService) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := s.store.GetExpense(r.Context(), id)
	if err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed, err := engine.ParseExpenses([]engine.RawExpense{req.raw()})
	if err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	updated := *existing
	updated.Description = parsed[0].Description
	updated.Amount = parsed[0].Amount
	updated.Date = parsed[0].Date
	updated.Category = engine.Categorize(parsed[0].Description)
	updated.UpdatedAt = time.Now().UTC()
	if req.UserID != "" {
		updated.UserID = req.UserID
	}

	if err := s.store.UpdateExpense(r.Context(), &updated); err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	writeJSON(w, http.StatusOK, &updated)
}

func (s *FinanceService) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, "FinanceService", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}

// handleCategories returns per-category totals over the stored history. The
// category is recomputed from the description so updated keyword rules apply
// retroactively.
func (s *FinanceService) handleCategories(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.listAllExpenses(r)
	if err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	totals := make(map[model.Category]float64)
	for _, e := range expenses {
		totals[engine.Categorize(e.Description)] += e.Amount
	}

	writeJSON(w, http.StatusOK, totals)
}

// handleMonthlySummary returns month-name spending totals over the stored
// history.
func (s *FinanceService) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.listAllExpenses(r)
	if err != nil {
		respondError(w, "FinanceService", err)
		return
	}

	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Date.Month().String()] += e.Amount
	}

	writeJSON(w, http.StatusOK, totals)
}

// listAllExpenses fetches the full stored history for the optional userId
// query param.
func (s *FinanceService) listAllExpenses(r *http.Request) ([]*model.Expense, error) {
	expenses, _, err := s.store.ListExpenses(r.Context(), r.URL.Query().Get("userId"), nil, nil, listAllPageSize, "")
	return expenses, err
}
