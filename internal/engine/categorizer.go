// Package engine implements the expense analysis engine: categorization,
// spending-pattern statistics, habit detection, trend prediction, savings
// opportunities and recommendation generation. All functions are pure and
// deterministic: the same expense list always produces the same report, and
// caller-owned slices are never mutated.
package engine

import (
	"strings"

	"github.com/finance-coach/backend/internal/model"
)

// categoryKeywords maps each category to its matching keywords. Order
// matters: the first category whose keyword occurs as a substring of the
// lower-cased description wins, so the table is a slice rather than a map.
var categoryKeywords = []struct {
	Category model.Category
	Keywords []string
}{
	{model.CategoryFood, []string{"restaurant", "grocery", "food", "meal", "dinner", "lunch", "breakfast"}},
	{model.CategoryTransport, []string{"gas", "fuel", "uber", "taxi", "bus", "train", "transport"}},
	{model.CategoryUtilities, []string{"electricity", "water", "internet", "phone", "utility"}},
	{model.CategoryEntertainment, []string{"movie", "game", "netflix", "spotify", "entertainment"}},
	{model.CategoryShopping, []string{"clothes", "shoes", "amazon", "shopping"}},
	{model.CategoryHealth, []string{"doctor", "medicine", "medical", "health", "fitness"}},
}

// categoryOrder lists the categories that can appear in derived aggregates,
// in the declared matching order. Used wherever deterministic iteration over
// per-category maps is required.
var categoryOrder = []model.Category{
	model.CategoryFood,
	model.CategoryTransport,
	model.CategoryUtilities,
	model.CategoryEntertainment,
	model.CategoryShopping,
	model.CategoryHealth,
	model.CategoryOther,
}

// Categorize maps a free-text expense description to a category label.
// Matching is case-insensitive substring search over the keyword table;
// descriptions that match nothing (including the empty string) fall through
// to CategoryOther.
func Categorize(description string) model.Category {
	desc := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(desc, keyword) {
				return entry.Category
			}
		}
	}
	return model.CategoryOther
}
