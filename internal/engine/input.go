package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/finance-coach/backend/internal/model"
)

// RawExpense is an expense record as submitted over the wire: free-text
// description, a numeric-ish amount and a date string in one of the accepted
// layouts. Amount is a json.Number so both `12.5` and `"12.5"` decode.
type RawExpense struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
}

// dateLayouts are the accepted date string formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseExpenses validates and converts raw records into model expenses.
// The first invalid record rejects the whole batch with an *AnalysisError:
// an unparseable date yields INVALID_DATE, a non-numeric, NaN or negative
// amount yields MALFORMED_AMOUNT, and a nil batch yields INVALID_INPUT.
func ParseExpenses(raw []RawExpense) ([]model.Expense, error) {
	if raw == nil {
		return nil, &AnalysisError{
			Code:    ErrInvalidInput,
			Index:   -1,
			Message: "expenses must be an array",
		}
	}

	expenses := make([]model.Expense, 0, len(raw))
	for i, r := range raw {
		amount, err := r.Amount.Float64()
		if err != nil {
			return nil, &AnalysisError{
				Code:    ErrMalformedAmount,
				Index:   i,
				Message: fmt.Sprintf("amount %q is not a number", r.Amount.String()),
				Cause:   err,
			}
		}
		if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
			return nil, &AnalysisError{
				Code:    ErrMalformedAmount,
				Index:   i,
				Message: fmt.Sprintf("amount %v must be a non-negative number", amount),
			}
		}

		date, err := ParseDate(r.Date)
		if err != nil {
			return nil, &AnalysisError{
				Code:    ErrInvalidDate,
				Index:   i,
				Message: fmt.Sprintf("date %q is not a recognized timestamp", r.Date),
				Cause:   err,
			}
		}

		expenses = append(expenses, model.Expense{
			Description: r.Description,
			Amount:      amount,
			Date:        date,
		})
	}
	return expenses, nil
}

// ParseDate parses a date string against the accepted layouts in order.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", value)
}
