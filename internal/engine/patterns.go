package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/finance-coach/backend/internal/model"
)

// highSpendThreshold is the amount above which an expense is flagged as a
// high-spend entry.
const highSpendThreshold = 100

// weekdayOrder fixes the iteration order for weekday aggregates so that
// float summation and max selection are deterministic.
var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// timeOfDayOrder fixes the iteration order for the time-of-day buckets.
var timeOfDayOrder = []string{"morning", "afternoon", "evening", "night"}

// HighSpendEntry is an expense flagged for exceeding the high-spend
// threshold, kept in input order.
type HighSpendEntry struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

// SpendingPatterns aggregates one expense snapshot by weekday, time of day
// and description+amount signature. All seven weekday keys and all four
// time-of-day buckets are always present, zero-initialized.
type SpendingPatterns struct {
	Weekday       map[string]float64 `json:"weekday"`
	TimeOfDay     map[string]float64 `json:"timeOfDay"`
	Frequency     map[string]int     `json:"frequency"`
	HighSpendDays []HighSpendEntry   `json:"highSpendDays"`
}

// AnalyzePatterns computes all pattern aggregations in a single pass over
// the expense list. Iteration order only affects the high-spend list, which
// matches input order.
func AnalyzePatterns(expenses []model.Expense) SpendingPatterns {
	patterns := SpendingPatterns{
		Weekday:       make(map[string]float64, len(weekdayOrder)),
		TimeOfDay:     make(map[string]float64, len(timeOfDayOrder)),
		Frequency:     make(map[string]int),
		HighSpendDays: []HighSpendEntry{},
	}
	for _, day := range weekdayOrder {
		patterns.Weekday[day] = 0
	}
	for _, bucket := range timeOfDayOrder {
		patterns.TimeOfDay[bucket] = 0
	}

	for _, e := range expenses {
		day := e.Date.Weekday().String()[:3]
		patterns.Weekday[day] += e.Amount
		patterns.TimeOfDay[timeOfDayBucket(e.Date.Hour())] += e.Amount
		patterns.Frequency[frequencyKey(e.Description, e.Amount)]++

		if e.Amount > highSpendThreshold {
			patterns.HighSpendDays = append(patterns.HighSpendDays, HighSpendEntry{
				Date:        e.Date,
				Amount:      e.Amount,
				Description: e.Description,
			})
		}
	}

	return patterns
}

// timeOfDayBucket classifies an hour into one of the four fixed buckets:
// [5,12) morning, [12,17) afternoon, [17,22) evening, everything else night.
func timeOfDayBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}

// frequencyKey builds the description+amount signature used to count exact
// repeat purchases. The amount keeps its shortest exact decimal form, so
// 12.5 and 12.50 collide while 12.5 and 12.51 do not.
func frequencyKey(description string, amount float64) string {
	return strings.ToLower(description) + "-" + strconv.FormatFloat(amount, 'f', -1, 64)
}
