package engine

import (
	"fmt"

	"github.com/finance-coach/backend/internal/model"
)

// trendAlertRatio is the fraction of the category average the trend must
// exceed before an alert fires.
const trendAlertRatio = 0.1

// Predictions projects next-period spend per category. Categories with no
// expenses are absent from all three fields.
type Predictions struct {
	NextMonth map[model.Category]float64 `json:"nextMonth"`
	Trends    map[model.Category]string  `json:"trends"`
	Alerts    []string                   `json:"alerts"`
}

// Predict derives per-category averages and linear trends from the expense
// list. Amounts are taken in input order, not date order. The trend is the
// mean of consecutive amount deltas (zero for fewer than two entries), the
// next-period estimate is average + trend and is deliberately not clamped,
// and an alert fires when the trend exceeds 10% of the category average.
func Predict(expenses []model.Expense) Predictions {
	type categoryStats struct {
		total   float64
		count   int
		amounts []float64
	}
	byCategory := make(map[model.Category]*categoryStats)

	for _, e := range expenses {
		category := Categorize(e.Description)
		stats, ok := byCategory[category]
		if !ok {
			stats = &categoryStats{}
			byCategory[category] = stats
		}
		stats.total += e.Amount
		stats.count++
		stats.amounts = append(stats.amounts, e.Amount)
	}

	predictions := Predictions{
		NextMonth: make(map[model.Category]float64, len(byCategory)),
		Trends:    make(map[model.Category]string, len(byCategory)),
		Alerts:    []string{},
	}

	// Iterate in declared category order so alert order is stable.
	for _, category := range categoryOrder {
		stats, ok := byCategory[category]
		if !ok {
			continue
		}
		avg := stats.total / float64(stats.count)
		trend := meanDelta(stats.amounts)

		predictions.NextMonth[category] = avg + trend
		if trend > 0 {
			predictions.Trends[category] = "increasing"
		} else {
			predictions.Trends[category] = "decreasing"
		}

		if trend > avg*trendAlertRatio {
			predictions.Alerts = append(predictions.Alerts,
				fmt.Sprintf("Warning: %s expenses are trending up significantly", category))
		}
	}

	return predictions
}

// meanDelta returns the mean of consecutive differences in the amount list,
// or zero when there are fewer than two entries.
func meanDelta(amounts []float64) float64 {
	if len(amounts) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(amounts); i++ {
		sum += amounts[i] - amounts[i-1]
	}
	return sum / float64(len(amounts)-1)
}
