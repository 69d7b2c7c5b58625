package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPropagatesToAllServices(t *testing.T) {
	var authHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		switch {
		case strings.HasPrefix(r.URL.Path, "/v0/expenses/"),
			strings.HasPrefix(r.URL.Path, "/v0/loan/"),
			strings.HasPrefix(r.URL.Path, "/v0/invest/"):
			w.Write([]byte(`[]`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	gateway := New(primitives.URLString(server.URL), nil)
	gateway.SetAccessToken("abc")
	ctx := context.Background()

	gateway.UserService.GetUser(ctx, "u1")
	gateway.ExpenseService.GetExpenseByUser(ctx, params.GetUserExpensesParams{UserID: "u1", Date: "0"})
	gateway.MonthlyLimitService.GetMonthlyLimitByUserID(ctx, params.GetMonthlyLimitParams{UserID: "u1", Month: 1, Year: 2026})
	gateway.LoanService.GetLoanByUserID(ctx, "u1")
	gateway.InvestService.GetInvestByUserID(ctx, params.GetInvestParams{UserID: "u1", Status: models.InvestStatusActive})

	require.Len(t, authHeaders, 5)
	for _, h := range authHeaders {
		assert.Equal(t, "Bearer abc", h)
	}
}

// Add an expense, then re-fetch the list the way a screen does after a
// successful mutation.
func TestAddThenListExpense(t *testing.T) {
	var stored []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v0/expense/add":
			stored = append(stored, `{"id":"e1","userId":"u1","amount":50,"description":"lunch","date":"1700000000","created":"1700000001","updated":"1700000001"}`)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(stored[len(stored)-1]))
		case r.Method == http.MethodGet && r.URL.Path == "/v0/expenses/u1":
			w.Write([]byte("[" + strings.Join(stored, ",") + "]"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	gateway := New(primitives.URLString(server.URL), nil)
	ctx := context.Background()

	desc := "lunch"
	added, err := gateway.ExpenseService.AddExpense(ctx, params.AddExpenseParams{
		UserID:      "u1",
		Amount:      50,
		Description: &desc,
		Date:        "1700000000",
	})
	require.NoError(t, err)
	assert.Equal(t, primitives.ExpenseID("e1"), added.ID)

	expenses, err := gateway.ExpenseService.GetExpenseByUser(ctx, params.GetUserExpensesParams{UserID: "u1", Date: "1700000000"})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 50.0, expenses[0].Amount)
}

func TestServicesShareOneTransport(t *testing.T) {
	gateway := New("https://api.example.com", nil)

	require.NotNil(t, gateway.Ajax)
	assert.Equal(t, gateway.Config.BaseURL, primitives.URLString("https://api.example.com"))
	assert.NotNil(t, gateway.UserService)
	assert.NotNil(t, gateway.ExpenseService)
	assert.NotNil(t, gateway.MonthlyLimitService)
	assert.NotNil(t, gateway.LoanService)
	assert.NotNil(t, gateway.InvestService)
}
