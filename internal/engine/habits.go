package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/finance-coach/backend/internal/model"
)

// impulseWindow is the maximum gap between two consecutive purchases for
// them to be reported as an impulse pair.
const impulseWindow = 2 * time.Hour

// regularExpenseMinCount is the minimum number of occurrences of a
// description for it to count as a regular expense.
const regularExpenseMinCount = 3

// ImpulsePair is two time-adjacent purchases less than two hours apart,
// stamped with the date of the earlier one.
type ImpulsePair struct {
	Date  time.Time       `json:"date"`
	Items []model.Expense `json:"items"`
}

// RegularExpense summarizes a description that recurs at least three times
// in the expense history, regardless of amount.
type RegularExpense struct {
	Description   string  `json:"description"`
	Frequency     int     `json:"frequency"`
	AverageAmount float64 `json:"averageAmount"`
}

// Habits holds the detected spending habits for one analysis call.
type Habits struct {
	ImpulseBuying   []ImpulsePair    `json:"impulseBuying"`
	RegularExpenses []RegularExpense `json:"regularExpenses"`
}

// AnalyzeHabits detects impulse pairs and regular expenses. It sorts a copy
// of the input by ascending date, so the caller's slice is never reordered.
//
// Impulse detection is pairwise over adjacent entries: three purchases all
// within the window yield two pairs, not one cluster.
func AnalyzeHabits(expenses []model.Expense) Habits {
	habits := Habits{
		ImpulseBuying:   []ImpulsePair{},
		RegularExpenses: []RegularExpense{},
	}

	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for i := 0; i+1 < len(sorted); i++ {
		gap := sorted[i+1].Date.Sub(sorted[i].Date)
		if gap < impulseWindow {
			habits.ImpulseBuying = append(habits.ImpulseBuying, ImpulsePair{
				Date:  sorted[i].Date,
				Items: []model.Expense{sorted[i], sorted[i+1]},
			})
		}
	}

	// Group by lower-cased description, preserving first-appearance order
	// (in input order, not date order) so output is deterministic.
	groups := make(map[string][]model.Expense)
	var order []string
	for _, e := range expenses {
		key := strings.ToLower(e.Description)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}

	for _, key := range order {
		group := groups[key]
		if len(group) < regularExpenseMinCount {
			continue
		}
		var total float64
		for _, e := range group {
			total += e.Amount
		}
		habits.RegularExpenses = append(habits.RegularExpenses, RegularExpense{
			Description:   key,
			Frequency:     len(group),
			AverageAmount: total / float64(len(group)),
		})
	}

	return habits
}
