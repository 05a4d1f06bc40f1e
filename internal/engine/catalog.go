package engine

// InvestmentIdea is one fixed idea record in the investment catalog.
type InvestmentIdea struct {
	Type            string `json:"type"`
	Description     string `json:"description"`
	PotentialReturn string `json:"potentialReturn"`
	RiskLevel       string `json:"riskLevel"`
}

// InvestmentCategory groups investment ideas behind a minimum-capital
// threshold.
type InvestmentCategory struct {
	Threshold float64          `json:"threshold"`
	Ideas     []InvestmentIdea `json:"ideas"`
}

// Challenge is one fixed savings/learning challenge with concrete steps.
type Challenge struct {
	Name     string   `json:"name"`
	Duration string   `json:"duration"`
	Target   string   `json:"target"`
	Steps    []string `json:"steps"`
	Reward   string   `json:"reward"`
}

// PassiveIncomeIdea is one fixed passive income suggestion.
type PassiveIncomeIdea struct {
	Type              string `json:"type"`
	Description       string `json:"description"`
	InitialInvestment string `json:"initialInvestment"`
	PotentialReturn   string `json:"potentialReturn"`
}

// investmentCatalog is static presentation data attached to every report.
// It is configuration, not derived from expense history.
var investmentCatalog = map[string]InvestmentCategory{
	"realEstate": {
		Threshold: 2000,
		Ideas: []InvestmentIdea{
			{
				Type:            "Real Estate Investment",
				Description:     "Consider house hacking - buy a duplex, live in one unit, rent the other",
				PotentialReturn: "20-30",
				RiskLevel:       "medium",
			},
			{
				Type:            "REIT Investment",
				Description:     "Start with REITs to learn real estate market",
				PotentialReturn: "8-12",
				RiskLevel:       "low",
			},
		},
	},
	"business": {
		Threshold: 1000,
		Ideas: []InvestmentIdea{
			{
				Type:            "Online Business",
				Description:     "Start a dropshipping or print-on-demand business",
				PotentialReturn: "25-40",
				RiskLevel:       "medium",
			},
			{
				Type:            "Service Business",
				Description:     "Leverage your skills into a consulting business",
				PotentialReturn: "30-50",
				RiskLevel:       "low",
			},
		},
	},
	"paperAssets": {
		Threshold: 500,
		Ideas: []InvestmentIdea{
			{
				Type:            "Dividend Stocks",
				Description:     "Build a dividend portfolio for passive income",
				PotentialReturn: "4-8",
				RiskLevel:       "medium",
			},
			{
				Type:            "Index Funds",
				Description:     "Start with low-cost index funds",
				PotentialReturn: "7-10",
				RiskLevel:       "low",
			},
		},
	},
}

// challengeCatalog is the fixed list of challenges attached to every report.
var challengeCatalog = []Challenge{
	{
		Name:     "Asset Acquisition Sprint",
		Duration: "90 days",
		Target:   "Acquire your first income-generating asset",
		Steps: []string{
			"Identify potential assets under $1000",
			"Research and analyze 3 investment options",
			"Make your first investment",
		},
		Reward: "First step to financial freedom",
	},
	{
		Name:     "Liability Elimination",
		Duration: "60 days",
		Target:   "Convert one liability into an asset",
		Steps: []string{
			"List all current liabilities",
			"Identify one that could become an asset",
			"Create conversion plan",
		},
		Reward: "Improved cash flow",
	},
	{
		Name:     "Financial IQ Boost",
		Duration: "30 days",
		Target:   "Learn key financial concepts",
		Steps: []string{
			"Read Rich Dad Poor Dad",
			"Learn basic accounting",
			"Study investment basics",
		},
		Reward: "Enhanced financial knowledge",
	},
}

// passiveIncomeCatalog is the fixed list of passive income ideas attached to
// every report.
var passiveIncomeCatalog = []PassiveIncomeIdea{
	{
		Type:              "Digital Products",
		Description:       "Create and sell online courses or ebooks",
		InitialInvestment: "Time + $100-500",
		PotentialReturn:   "Unlimited",
	},
	{
		Type:              "Rental Income",
		Description:       "Rent out a spare room or parking space",
		InitialInvestment: "Existing Asset",
		PotentialReturn:   "$200-1000/month",
	},
	{
		Type:              "Dividend Portfolio",
		Description:       "Build a portfolio of dividend-paying stocks",
		InitialInvestment: "$1000+",
		PotentialReturn:   "4-8% annually",
	},
}

// InvestmentCatalog returns the static investment idea catalog.
func InvestmentCatalog() map[string]InvestmentCategory {
	return investmentCatalog
}

// ChallengeCatalog returns the static challenge catalog.
func ChallengeCatalog() []Challenge {
	return challengeCatalog
}

// PassiveIncomeCatalog returns the static passive income catalog.
func PassiveIncomeCatalog() []PassiveIncomeIdea {
	return passiveIncomeCatalog
}
