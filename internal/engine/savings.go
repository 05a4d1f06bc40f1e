package engine

import (
	"strings"
	"time"

	"github.com/finance-coach/backend/internal/model"
)

const (
	// subscriptionMaxAmount caps how large an expense can be and still look
	// like a subscription charge.
	subscriptionMaxAmount = 50
	// duplicateAmountTolerance and duplicateDateWindow bound how close two
	// expenses must be, in amount and in time, to be flagged as duplicates.
	// Both comparisons are strict.
	duplicateAmountTolerance = 1.0
	duplicateDateWindow      = 3 * 24 * time.Hour
)

// subscriptionMarkers are the literal substrings that mark a small expense
// as subscription-like, matched case-insensitively.
var subscriptionMarkers = []string{"subscription", "monthly", "netflix", "spotify", "amazon"}

// SavingsOpportunity is one identified way to cut spending.
type SavingsOpportunity struct {
	Type             string  `json:"type"`
	Description      string  `json:"description"`
	PotentialSavings float64 `json:"potentialSavings"`
}

// DuplicatePair is two expenses with nearly identical amounts dated within
// the duplicate window of each other.
type DuplicatePair struct {
	First  model.Expense `json:"first"`
	Second model.Expense `json:"second"`
}

// Savings holds subscription and duplicate findings for one analysis call.
type Savings struct {
	Opportunities  []SavingsOpportunity `json:"opportunities"`
	TotalPotential float64              `json:"totalPotential"`
	Subscriptions  []model.Expense      `json:"subscriptions"`
	Duplicates     []DuplicatePair      `json:"duplicates"`
}

// FindSavings flags subscription-like expenses and near-duplicate expenses.
//
// The duplicate scan is all-pairs O(n²) over the full history. That is fine
// for single-user expense logs; a sort-by-amount window scan would replace
// it without an interface change if histories ever grow large.
func FindSavings(expenses []model.Expense) Savings {
	savings := Savings{
		Opportunities: []SavingsOpportunity{},
		Subscriptions: []model.Expense{},
		Duplicates:    []DuplicatePair{},
	}

	for _, e := range expenses {
		if e.Amount < subscriptionMaxAmount && matchesSubscription(e.Description) {
			savings.Subscriptions = append(savings.Subscriptions, e)
		}
	}
	if len(savings.Subscriptions) > 0 {
		var total float64
		for _, e := range savings.Subscriptions {
			total += e.Amount
		}
		savings.Opportunities = append(savings.Opportunities, SavingsOpportunity{
			Type:             "subscription",
			Description:      "Review your subscription services",
			PotentialSavings: total,
		})
		savings.TotalPotential += total
	}

	for i := 0; i < len(expenses); i++ {
		for j := i + 1; j < len(expenses); j++ {
			amountDiff := expenses[i].Amount - expenses[j].Amount
			if amountDiff < 0 {
				amountDiff = -amountDiff
			}
			dateDiff := expenses[i].Date.Sub(expenses[j].Date)
			if dateDiff < 0 {
				dateDiff = -dateDiff
			}
			if amountDiff < duplicateAmountTolerance && dateDiff < duplicateDateWindow {
				savings.Duplicates = append(savings.Duplicates, DuplicatePair{
					First:  expenses[i],
					Second: expenses[j],
				})
			}
		}
	}

	return savings
}

func matchesSubscription(description string) bool {
	desc := strings.ToLower(description)
	for _, marker := range subscriptionMarkers {
		if strings.Contains(desc, marker) {
			return true
		}
	}
	return false
}
