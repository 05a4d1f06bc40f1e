package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-coach/backend/internal/model"
	"github.com/finance-coach/backend/internal/store"
)

func newTestService(t *testing.T) (*store.MockStore, http.Handler) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	svc := NewFinanceService(mockStore, 0)
	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)

	return mockStore, mux
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateExpense(t *testing.T) {
	mockStore, handler := newTestService(t)

	var stored *model.Expense
	mockStore.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e *model.Expense) error {
			stored = e
			return nil
		})

	rec := doRequest(t, handler, http.MethodPost, "/api/expenses",
		`{"userId":"user-1","description":"Uber to airport","amount":42.5,"date":"2025-06-02T08:00:00Z"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, model.CategoryTransport, stored.Category, "category is derived from the description")
	assert.InDelta(t, 42.5, stored.Amount, 1e-9)
	assert.False(t, stored.CreatedAt.IsZero())

	assert.Contains(t, rec.Body.String(), `"transport"`)
}

func TestCreateExpenseStringAmount(t *testing.T) {
	mockStore, handler := newTestService(t)

	mockStore.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)

	rec := doRequest(t, handler, http.MethodPost, "/api/expenses",
		`{"description":"Coffee","amount":"4.50","date":"2025-06-02"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateExpenseValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		code string
	}{
		{"non-numeric amount", `{"description":"Coffee","amount":"abc","date":"2025-06-02"}`, "MALFORMED_AMOUNT"},
		{"negative amount", `{"description":"Coffee","amount":-5,"date":"2025-06-02"}`, "MALFORMED_AMOUNT"},
		{"bad date", `{"description":"Coffee","amount":5,"date":"soonish"}`, "INVALID_DATE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, handler := newTestService(t)
			rec := doRequest(t, handler, http.MethodPost, "/api/expenses", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
		})
	}
}

func TestCreateExpenseMalformedJSON(t *testing.T) {
	_, handler := newTestService(t)
	rec := doRequest(t, handler, http.MethodPost, "/api/expenses", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListExpensesSortedNewestFirst(t *testing.T) {
	mockStore, handler := newTestService(t)

	older := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	mockStore.EXPECT().
		ListExpenses(gomock.Any(), "user-1", nil, nil, int32(0), "").
		Return([]*model.Expense{
			{ID: "a", Description: "Older", Date: older},
			{ID: "b", Description: "Newer", Date: newer},
		}, "", nil)

	rec := doRequest(t, handler, http.MethodGet, "/api/expenses?userId=user-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "Newer"), strings.Index(body, "Older"))
}

func TestListExpensesDateRange(t *testing.T) {
	mockStore, handler := newTestService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mockStore.EXPECT().
		ListExpenses(gomock.Any(), "", &start, nil, int32(25), "").
		Return(nil, "", nil)

	rec := doRequest(t, handler, http.MethodGet, "/api/expenses?startDate=2025-06-01&pageSize=25", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListExpensesBadParams(t *testing.T) {
	_, handler := newTestService(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/expenses?startDate=nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/expenses?pageSize=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateExpense(t *testing.T) {
	mockStore, handler := newTestService(t)

	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	existing := &model.Expense{
		ID:          "exp-1",
		UserID:      "user-1",
		Description: "Old description",
		Amount:      10,
		Category:    model.CategoryOther,
		CreatedAt:   created,
	}
	mockStore.EXPECT().GetExpense(gomock.Any(), "exp-1").Return(existing, nil)

	var updated *model.Expense
	mockStore.EXPECT().
		UpdateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e *model.Expense) error {
			updated = e
			return nil
		})

	rec := doRequest(t, handler, http.MethodPut, "/api/expenses/exp-1",
		`{"description":"Grocery restock","amount":80,"date":"2025-06-02"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	assert.Equal(t, "exp-1", updated.ID)
	assert.Equal(t, "user-1", updated.UserID)
	assert.Equal(t, model.CategoryFood, updated.Category, "category tracks the new description")
	assert.Equal(t, created, updated.CreatedAt, "creation timestamp is preserved")
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestUpdateExpenseNotFound(t *testing.T) {
	mockStore, handler := newTestService(t)

	mockStore.EXPECT().GetExpense(gomock.Any(), "missing").Return(nil, store.ErrNotFound)

	rec := doRequest(t, handler, http.MethodPut, "/api/expenses/missing",
		`{"description":"Anything","amount":5,"date":"2025-06-02"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteExpense(t *testing.T) {
	mockStore, handler := newTestService(t)

	mockStore.EXPECT().DeleteExpense(gomock.Any(), "exp-1").Return(nil)

	rec := doRequest(t, handler, http.MethodDelete, "/api/expenses/exp-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Expense deleted successfully")
}

func TestDeleteExpenseNotFound(t *testing.T) {
	mockStore, handler := newTestService(t)

	mockStore.EXPECT().DeleteExpense(gomock.Any(), "missing").Return(store.ErrNotFound)

	rec := doRequest(t, handler, http.MethodDelete, "/api/expenses/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoriesTotals(t *testing.T) {
	mockStore, handler := newTestService(t)

	date := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	mockStore.EXPECT().
		ListExpenses(gomock.Any(), "", nil, nil, int32(listAllPageSize), "").
		Return([]*model.Expense{
			{Description: "Grocery run", Amount: 80, Date: date},
			{Description: "Restaurant dinner", Amount: 45, Date: date},
			{Description: "Uber ride", Amount: 20, Date: date},
		}, "", nil)

	rec := doRequest(t, handler, http.MethodGet, "/api/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"food":125`)
	assert.Contains(t, rec.Body.String(), `"transport":20`)
}

func TestMonthlySummary(t *testing.T) {
	mockStore, handler := newTestService(t)

	mockStore.EXPECT().
		ListExpenses(gomock.Any(), "", nil, nil, int32(listAllPageSize), "").
		Return([]*model.Expense{
			{Description: "A", Amount: 10, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			{Description: "B", Amount: 20, Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)},
			{Description: "C", Amount: 5, Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		}, "", nil)

	rec := doRequest(t, handler, http.MethodGet, "/api/summary/monthly", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"June":30`)
	assert.Contains(t, rec.Body.String(), `"July":5`)
}

func TestHealth(t *testing.T) {
	_, handler := newTestService(t)

	for _, path := range []string{"/health", "/"} {
		rec := doRequest(t, handler, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok"`)
	}
}
