package engine

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/finance-coach/backend/internal/model"
)

// DefaultMonthlyIncome is the assumed monthly income used for the cash-flow
// ratio when the caller does not supply one.
const DefaultMonthlyIncome = 5000

// Cash-flow ratio tiers, in percent of monthly income.
const (
	employeeRatioThreshold     = 80
	selfEmployedRatioThreshold = 60
)

// savingsChallengeCut is the fraction of average daily spend the 30-day
// challenge asks the user to save.
const savingsChallengeCut = 0.2

// currency formats dollar amounts in recommendation text.
var currency = message.NewPrinter(language.AmericanEnglish)

// Insight is a single derived observation with a suggested action.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Recommendation is one piece of templated advice. Text carries the
// pattern-derived wording, Steps the concrete follow-ups when there are any.
type Recommendation struct {
	Type        string   `json:"type,omitempty"`
	Title       string   `json:"title"`
	Text        string   `json:"text,omitempty"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	Action      string   `json:"action,omitempty"`
	Steps       []string `json:"steps,omitempty"`
}

// CashFlowSuggestion is a titled step list for improving cash flow.
type CashFlowSuggestion struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// CashFlowAnalysis summarizes spend against income.
type CashFlowAnalysis struct {
	ExpenseRatio float64              `json:"expenseRatio"`
	MonthlyFlow  map[string]float64   `json:"monthlyFlow"`
	Suggestions  []CashFlowSuggestion `json:"suggestions"`
}

// generateInsights classifies the user's cash-flow-quadrant position from
// the expense-to-income ratio.
func generateInsights(expenseRatio float64) []Insight {
	quadrant := "B/I (Business/Investor)"
	if expenseRatio > employeeRatioThreshold {
		quadrant = "E (Employee)"
	} else if expenseRatio > selfEmployedRatioThreshold {
		quadrant = "S (Self-employed)"
	}

	action := "Continue building your asset column"
	if expenseRatio > selfEmployedRatioThreshold {
		action = "Move towards B/I quadrant by acquiring assets"
	}

	return []Insight{{
		Title:       "Cash Flow Quadrant Position",
		Description: fmt.Sprintf("You're currently in the %s quadrant", quadrant),
		Action:      action,
	}}
}

// generateRecommendations composes the templated recommendation list from
// pattern and habit aggregates. Step order is fixed so report output is
// deterministic.
func generateRecommendations(expenses []model.Expense, patterns SpendingPatterns, habits Habits, expenseRatio float64) []Recommendation {
	recommendations := []Recommendation{}

	topDay := maxKey(patterns.Weekday, weekdayOrder)
	recommendations = append(recommendations, Recommendation{
		Type:     "pattern",
		Title:    "Spending Pattern Alert",
		Text:     fmt.Sprintf("You tend to spend more on %ss. Consider planning your expenses better on these days.", topDay),
		Priority: "high",
		Action:   "Plan ahead for your high-spending days",
	})

	topBucket := maxKey(patterns.TimeOfDay, timeOfDayOrder)
	var cause string
	switch topBucket {
	case "evening":
		cause = "impulse buying after work"
	case "night":
		cause = "late-night shopping"
	default:
		cause = "unplanned purchases"
	}
	recommendations = append(recommendations, Recommendation{
		Type:     "timing",
		Title:    "Time-based Spending Pattern",
		Text:     fmt.Sprintf("You spend most during %s hours. This might be due to %s.", topBucket, cause),
		Priority: "medium",
		Action:   "Set spending limits for different times of day",
	})

	for _, regular := range habits.RegularExpenses {
		priority := "medium"
		if regular.AverageAmount > highSpendThreshold {
			priority = "high"
		}
		recommendations = append(recommendations, Recommendation{
			Type:  "regular",
			Title: "Regular Expense Optimization",
			Text: currency.Sprintf("You spend an average of $%.2f on %s %d times. Consider finding a better deal or bulk purchase options.",
				regular.AverageAmount, regular.Description, regular.Frequency),
			Priority: priority,
			Action:   "Research alternatives or bulk deals",
		})
	}

	recommendations = append(recommendations, Recommendation{
		Type:     "challenge",
		Title:    "Monthly Saving Challenge",
		Text:     fmt.Sprintf("Based on your spending patterns, you could save %s by taking our 30-day saving challenge!", savingsChallengeTarget(expenses)),
		Priority: "medium",
		Action:   "Start 30-day saving challenge",
	})

	if expenseRatio > selfEmployedRatioThreshold {
		recommendations = append(recommendations, Recommendation{
			Title:       "Mind Your Business",
			Description: "Start a side business in your expertise area",
			Priority:    "high",
			Steps: []string{
				"Identify your marketable skills",
				"Create a basic business plan",
				"Start with one client",
			},
		})
	}

	return recommendations
}

// savingsChallengeTarget formats the daily saving target: 20% of the average
// daily spend, taking the history total over a 30-day month.
func savingsChallengeTarget(expenses []model.Expense) string {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	avgDaily := total / 30
	return currency.Sprintf("$%.2f per day", avgDaily*savingsChallengeCut)
}

// generateCashFlowSuggestions returns tiered step lists: an emergency fix
// above the employee threshold, an optimization plan above the self-employed
// threshold, nothing otherwise.
func generateCashFlowSuggestions(expenseRatio float64) []CashFlowSuggestion {
	suggestions := []CashFlowSuggestion{}
	if expenseRatio > employeeRatioThreshold {
		suggestions = append(suggestions, CashFlowSuggestion{
			Title: "Emergency Cash Flow Fix",
			Steps: []string{
				"Immediate 25% expense reduction",
				"Sell unnecessary assets",
				"Find additional income source",
			},
		})
	} else if expenseRatio > selfEmployedRatioThreshold {
		suggestions = append(suggestions, CashFlowSuggestion{
			Title: "Cash Flow Optimization",
			Steps: []string{
				"Reduce expenses by 15%",
				"Start a side hustle",
				"Learn about passive income",
			},
		})
	}
	return suggestions
}

// monthlyFlow totals expenses per calendar month name.
func monthlyFlow(expenses []model.Expense) map[string]float64 {
	flow := make(map[string]float64)
	for _, e := range expenses {
		flow[e.Date.Month().String()] += e.Amount
	}
	return flow
}

// maxKey returns the key with the largest value, breaking ties in favor of
// the key appearing first in the given fixed order.
func maxKey(values map[string]float64, order []string) string {
	best := order[0]
	for _, key := range order[1:] {
		if values[key] > values[best] {
			best = key
		}
	}
	return best
}
