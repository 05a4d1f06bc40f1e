package engine

import "github.com/finance-coach/backend/internal/model"

// Report is the full analysis output for one expense snapshot: derived
// aggregates, templated advice and the static catalogs. Everything is built
// fresh per call and nothing is cached between calls.
type Report struct {
	Patterns        SpendingPatterns              `json:"patterns"`
	Habits          Habits                        `json:"habits"`
	Predictions     Predictions                   `json:"predictions"`
	Savings         Savings                       `json:"savings"`
	KeyInsights     []Insight                     `json:"keyInsights"`
	Recommendations []Recommendation              `json:"recommendations"`
	InvestmentIdeas map[string]InvestmentCategory `json:"investmentIdeas"`
	Challenges      []Challenge                   `json:"challenges"`
	PassiveIncome   []PassiveIncomeIdea           `json:"passiveIncome"`
	CashFlow        CashFlowAnalysis              `json:"cashFlowAnalysis"`
}

// Analyze runs every analysis pass over the expense snapshot and composes
// the report. monthlyIncome feeds the cash-flow ratio; pass zero or a
// negative value to use DefaultMonthlyIncome. The input slice is read-only
// to the engine and concurrent callers need no coordination.
func Analyze(expenses []model.Expense, monthlyIncome float64) Report {
	if monthlyIncome <= 0 {
		monthlyIncome = DefaultMonthlyIncome
	}

	patterns := AnalyzePatterns(expenses)
	habits := AnalyzeHabits(expenses)
	predictions := Predict(expenses)
	savings := FindSavings(expenses)

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	expenseRatio := total / monthlyIncome * 100

	return Report{
		Patterns:        patterns,
		Habits:          habits,
		Predictions:     predictions,
		Savings:         savings,
		KeyInsights:     generateInsights(expenseRatio),
		Recommendations: generateRecommendations(expenses, patterns, habits, expenseRatio),
		InvestmentIdeas: InvestmentCatalog(),
		Challenges:      ChallengeCatalog(),
		PassiveIncome:   PassiveIncomeCatalog(),
		CashFlow: CashFlowAnalysis{
			ExpenseRatio: expenseRatio,
			MonthlyFlow:  monthlyFlow(expenses),
			Suggestions:  generateCashFlowSuggestions(expenseRatio),
		},
	}
}
