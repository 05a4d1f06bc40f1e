package service

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analyzeBody = `{
	"expenses": [
		{"description": "Grocery run", "amount": 85.20, "date": "2025-06-02T18:30:00Z"},
		{"description": "Netflix subscription", "amount": 15.99, "date": "2025-06-03T09:00:00Z"},
		{"description": "New TV", "amount": 450.00, "date": "2025-06-07T20:15:00Z"},
		{"description": "Coffee", "amount": 4.50, "date": "2025-06-07T21:00:00Z"}
	]
}`

func TestAnalyzeEnvelope(t *testing.T) {
	_, handler := newTestService(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/analyze", analyzeBody)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "patterns")
	assert.Contains(t, resp, "habits")
	require.Contains(t, resp, "advice")

	var adviceResp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp["advice"], &adviceResp))
	for _, key := range []string{
		"keyInsights", "recommendations", "investmentIdeas", "challenges",
		"passiveIncome", "cashFlowAnalysis", "predictions", "savings",
	} {
		assert.Contains(t, adviceResp, key)
	}
}

func TestAnalyzeFindsSubscriptionAndImpulse(t *testing.T) {
	_, handler := newTestService(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/analyze", analyzeBody)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Netflix subscription")
	// TV at 20:15 and coffee at 21:00 fall inside the impulse window.
	assert.Contains(t, body, `"impulseBuying"`)
	assert.Contains(t, body, "New TV")
}

func TestAnalyzeMissingExpensesField(t *testing.T) {
	_, handler := newTestService(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/analyze", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAnalyzeBadRecord(t *testing.T) {
	_, handler := newTestService(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/analyze",
		`{"expenses":[{"description":"A","amount":5,"date":"garbage"}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_DATE")
}

func TestAnalyzeMalformedJSON(t *testing.T) {
	_, handler := newTestService(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/analyze", `{nope`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeMonthlyIncomeOverride(t *testing.T) {
	_, handler := newTestService(t)

	// Total 2500 against an income of 2500 gives a 100% ratio, which lands
	// in the E quadrant.
	rec := doRequest(t, handler, http.MethodPost, "/api/analyze",
		`{"expenses":[{"description":"Rent","amount":2500,"date":"2025-06-01"}],"monthlyIncome":2500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "E (Employee)")
	assert.Contains(t, rec.Body.String(), `"expenseRatio":100`)
}

func TestAIInsightsFlatReport(t *testing.T) {
	_, handler := newTestService(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/ai-insights", analyzeBody)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, key := range []string{
		"patterns", "habits", "predictions", "savings", "keyInsights",
		"recommendations", "investmentIdeas", "challenges", "passiveIncome",
		"cashFlowAnalysis",
	} {
		assert.Contains(t, resp, key)
	}
	assert.NotContains(t, resp, "advice")
}
