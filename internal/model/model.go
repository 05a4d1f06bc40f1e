package model

import "time"

// Category is one of the fixed expense category labels assigned by keyword
// matching. It is derived at analysis time and stored on the expense only as
// a convenience snapshot.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryOther         Category = "other"
)

// Expense is a single logged expense record.
type Expense struct {
	ID          string    `json:"id,omitempty" firestore:"id"`
	UserID      string    `json:"userId,omitempty" firestore:"userId"`
	Description string    `json:"description" firestore:"description"`
	Amount      float64   `json:"amount" firestore:"amount"`
	Date        time.Time `json:"date" firestore:"date"`
	Category    Category  `json:"category,omitempty" firestore:"category"`
	CreatedAt   time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" firestore:"updatedAt"`
}

// Asset is something the user owns that holds or produces value.
type Asset struct {
	ID        string    `json:"id,omitempty" firestore:"id"`
	UserID    string    `json:"userId,omitempty" firestore:"userId"`
	Name      string    `json:"name" firestore:"name"`
	Category  string    `json:"category" firestore:"category"`
	Type      string    `json:"type" firestore:"type"`
	Value     float64   `json:"value" firestore:"value"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// Liability is a debt or recurring obligation the user owes.
type Liability struct {
	ID        string    `json:"id,omitempty" firestore:"id"`
	UserID    string    `json:"userId,omitempty" firestore:"userId"`
	Name      string    `json:"name" firestore:"name"`
	Category  string    `json:"category" firestore:"category"`
	Priority  string    `json:"priority" firestore:"priority"`
	Amount    float64   `json:"amount" firestore:"amount"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// AssetCategoryInfo describes one asset category in the static catalog.
type AssetCategoryInfo struct {
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
	Type     string   `json:"type"`
}

// LiabilityCategoryInfo describes one liability category in the static catalog.
type LiabilityCategoryInfo struct {
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
	Priority string   `json:"priority"`
}

// AssetCategories is the fixed asset category catalog. The Type field is the
// default applied to new assets filed under that category.
var AssetCategories = map[string]AssetCategoryInfo{
	"realEstate": {
		Name:     "Real Estate",
		Examples: []string{"Primary Home", "Rental Property", "Land", "Commercial Property"},
		Type:     "physical",
	},
	"business": {
		Name:     "Business",
		Examples: []string{"Online Store", "Consulting Practice", "Franchise", "Startup"},
		Type:     "active",
	},
	"investments": {
		Name:     "Paper Assets",
		Examples: []string{"Stocks", "Bonds", "Mutual Funds", "ETFs", "Cryptocurrencies"},
		Type:     "paper",
	},
	"cashFlow": {
		Name:     "Cash Flow Assets",
		Examples: []string{"Rental Income", "Dividend Stocks", "Royalties", "Online Courses"},
		Type:     "passive",
	},
	"intellectual": {
		Name:     "Intellectual Property",
		Examples: []string{"Patents", "Trademarks", "Copyrights", "Brand Names"},
		Type:     "intellectual",
	},
}

// LiabilityCategories is the fixed liability category catalog. The Priority
// field is the default applied to new liabilities filed under that category.
var LiabilityCategories = map[string]LiabilityCategoryInfo{
	"shortTerm": {
		Name:     "Short-term Debt",
		Examples: []string{"Credit Card Debt", "Personal Loans", "Medical Bills"},
		Priority: "high",
	},
	"longTerm": {
		Name:     "Long-term Debt",
		Examples: []string{"Mortgage", "Student Loans", "Business Loans"},
		Priority: "medium",
	},
	"consumer": {
		Name:     "Consumer Debt",
		Examples: []string{"Car Loans", "Appliance Financing", "Electronics Payment Plans"},
		Priority: "high",
	},
	"recurring": {
		Name:     "Recurring Liabilities",
		Examples: []string{"Subscriptions", "Memberships", "Insurance Premiums"},
		Priority: "medium",
	},
}

// AssetType returns the default asset type for a category key, or "other"
// when the category is not in the catalog.
func AssetType(category string) string {
	if info, ok := AssetCategories[category]; ok {
		return info.Type
	}
	return "other"
}

// LiabilityPriority returns the default priority for a category key, or
// "medium" when the category is not in the catalog.
func LiabilityPriority(category string) string {
	if info, ok := LiabilityCategories[category]; ok {
		return info.Priority
	}
	return "medium"
}
