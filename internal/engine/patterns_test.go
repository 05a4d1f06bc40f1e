package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-coach/backend/internal/model"
)

func expenseAt(description string, amount float64, date string) model.Expense {
	t, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Expense{Description: description, Amount: amount, Date: t}
}

func TestAnalyzePatternsWeekdayTotals(t *testing.T) {
	expenses := []model.Expense{
		expenseAt("Lunch", 12.50, "2025-06-02T12:30:00Z"), // Monday
		expenseAt("Coffee", 4.50, "2025-06-02T08:00:00Z"), // Monday
		expenseAt("Cinema", 30, "2025-06-07T20:00:00Z"),   // Saturday
	}

	patterns := AnalyzePatterns(expenses)

	assert.InDelta(t, 17.0, patterns.Weekday["Mon"], 1e-9)
	assert.InDelta(t, 30.0, patterns.Weekday["Sat"], 1e-9)

	// All seven keys are present even when zero.
	require.Len(t, patterns.Weekday, 7)
	assert.Zero(t, patterns.Weekday["Wed"])

	// Weekday totals sum to the grand total.
	var weekdaySum, total float64
	for _, v := range patterns.Weekday {
		weekdaySum += v
	}
	for _, e := range expenses {
		total += e.Amount
	}
	assert.InDelta(t, total, weekdaySum, 1e-9)
}

func TestAnalyzePatternsTimeOfDayBuckets(t *testing.T) {
	expenses := []model.Expense{
		expenseAt("Breakfast", 10, "2025-06-02T05:00:00Z"),  // morning boundary
		expenseAt("Brunch", 20, "2025-06-02T11:59:00Z"),     // still morning
		expenseAt("Lunch", 15, "2025-06-02T12:00:00Z"),      // afternoon boundary
		expenseAt("Drinks", 25, "2025-06-02T17:00:00Z"),     // evening boundary
		expenseAt("Late snack", 8, "2025-06-02T22:00:00Z"),  // night boundary
		expenseAt("Very early", 5, "2025-06-02T04:59:00Z"),  // night
		expenseAt("Midnight", 3, "2025-06-02T00:00:00Z"),    // night
	}

	patterns := AnalyzePatterns(expenses)

	assert.InDelta(t, 30.0, patterns.TimeOfDay["morning"], 1e-9)
	assert.InDelta(t, 15.0, patterns.TimeOfDay["afternoon"], 1e-9)
	assert.InDelta(t, 25.0, patterns.TimeOfDay["evening"], 1e-9)
	assert.InDelta(t, 16.0, patterns.TimeOfDay["night"], 1e-9)
	require.Len(t, patterns.TimeOfDay, 4)
}

func TestAnalyzePatternsFrequencySignature(t *testing.T) {
	expenses := []model.Expense{
		expenseAt("Coffee", 4.5, "2025-06-02T08:00:00Z"),
		expenseAt("COFFEE", 4.5, "2025-06-03T08:00:00Z"),
		expenseAt("coffee", 4.51, "2025-06-04T08:00:00Z"), // different amount, different key
	}

	patterns := AnalyzePatterns(expenses)

	assert.Equal(t, 2, patterns.Frequency["coffee-4.5"])
	assert.Equal(t, 1, patterns.Frequency["coffee-4.51"])
}

func TestAnalyzePatternsHighSpend(t *testing.T) {
	expenses := []model.Expense{
		expenseAt("TV", 450, "2025-06-03T18:00:00Z"),
		expenseAt("Lunch", 12, "2025-06-02T12:30:00Z"),
		expenseAt("Exactly threshold", 100, "2025-06-04T09:00:00Z"), // not strictly above
		expenseAt("Flight", 320.99, "2025-06-05T07:00:00Z"),
	}

	patterns := AnalyzePatterns(expenses)

	require.Len(t, patterns.HighSpendDays, 2)
	// Input order is preserved.
	assert.Equal(t, "TV", patterns.HighSpendDays[0].Description)
	assert.Equal(t, "Flight", patterns.HighSpendDays[1].Description)
}

func TestAnalyzePatternsEmptyInput(t *testing.T) {
	patterns := AnalyzePatterns(nil)

	assert.Len(t, patterns.Weekday, 7)
	assert.Len(t, patterns.TimeOfDay, 4)
	assert.Empty(t, patterns.Frequency)
	assert.Empty(t, patterns.HighSpendDays)
}
