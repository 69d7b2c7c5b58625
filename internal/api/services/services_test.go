package services

import (
	"context"
	"net/http"
	"testing"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "https://api.example.com/v0/expense/add",
		join("https://api.example.com", "v0", "expense", "add"))
	assert.Equal(t, "https://api.example.com/v0/user/u1",
		join("https://api.example.com/", "v0", "user", "u1"))
}

func TestAPIErrorMessage(t *testing.T) {
	withStatus := &APIError{Status: 500, Payload: "boom"}
	assert.Equal(t, "api error (status 500): boom", withStatus.Error())

	network := &APIError{Payload: "dial tcp: connection refused"}
	assert.Equal(t, "dial tcp: connection refused", network.Error())
}

func newTransport(baseURL string) (*Config, Transport) {
	return NewConfig(primitives.URLString(baseURL)), ajax.NewClient(nil, zap.NewNop())
}

func TestLoanServiceRoutes(t *testing.T) {
	rec, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":"l1","userId":"u1","name":"car","amount":900,"note":null,"deadLine":"1700000000","loanType":"GIVEN","created":"1","updated":"1"}]`))
		default:
			w.Write([]byte(`{"id":"l1","userId":"u1","name":"car","amount":900,"note":null,"deadLine":"1700000000","loanType":"GIVEN","created":"1","updated":"1"}`))
		}
	})

	config, transport := newTransport(server.URL)
	service := NewLoanService(config, transport)
	ctx := context.Background()

	_, err := service.AddLoan(ctx, params.AddLoanParams{
		UserID: "u1", Name: "car", Amount: 900, DeadLine: "1700000000", LoanType: models.LoanTypeGiven,
	})
	require.NoError(t, err)

	loans, err := service.GetLoanByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, models.LoanTypeGiven, loans[0].LoanType)

	name := "car repair"
	_, err = service.UpdateLoan(ctx, params.UpdateLoanParams{ID: "l1", Name: &name})
	require.NoError(t, err)

	require.NoError(t, service.DeleteLoan(ctx, "l1"))

	require.Len(t, rec.requests, 4)
	assert.Equal(t, "/v0/loan/add", rec.requests[0].Path)
	assert.Equal(t, "/v0/loan/u1", rec.requests[1].Path)
	assert.Equal(t, "/v0/loan/l1", rec.requests[2].Path)
	assert.Equal(t, http.MethodPut, rec.requests[2].Method)
	assert.Equal(t, "/v0/loan/l1", rec.requests[3].Path)
	assert.Equal(t, http.MethodDelete, rec.requests[3].Method)
}

func TestInvestServiceStatusFilter(t *testing.T) {
	rec, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	config, transport := newTransport(server.URL)
	service := NewInvestService(config, transport)

	_, err := service.GetInvestByUserID(context.Background(), params.GetInvestParams{
		UserID: "u1",
		Status: models.InvestStatusCompleted,
	})

	require.NoError(t, err)
	require.Len(t, rec.requests, 1)
	assert.Equal(t, "/v0/invest/u1", rec.requests[0].Path)
	assert.Equal(t, "status=Completed", rec.requests[0].Query)
}

func TestMonthlyLimitLookupQuery(t *testing.T) {
	rec, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"m1","userId":"u1","month":8,"year":2026,"limit":1200,"created":"1","updated":"1"}`))
	})

	config, transport := newTransport(server.URL)
	service := NewMonthlyLimitService(config, transport)

	limit, err := service.GetMonthlyLimitByUserID(context.Background(), params.GetMonthlyLimitParams{
		UserID: "u1",
		Month:  8,
		Year:   2026,
	})

	require.NoError(t, err)
	assert.Equal(t, 1200.0, limit.Limit)
	require.Len(t, rec.requests, 1)
	assert.Equal(t, "/v0/monthly-limit/u1", rec.requests[0].Path)
	assert.Equal(t, "month=8&year=2026", rec.requests[0].Query)
}

func TestUserServiceHasNoDelete(t *testing.T) {
	rec, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userId":"u1","name":"Ada","email":"ada@example.com","profilePicture":"https://cdn.example.com/a.png","created":"1","updated":"1"}`))
	})

	config, transport := newTransport(server.URL)
	service := NewUserService(config, transport)
	ctx := context.Background()

	user, err := service.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	name := "Ada L."
	_, err = service.UpdateUser(ctx, params.UpdateUserParams{UserID: "u1", Name: &name})
	require.NoError(t, err)

	require.Len(t, rec.requests, 2)
	assert.Equal(t, "/v0/user/u1", rec.requests[0].Path)
	assert.Equal(t, http.MethodPut, rec.requests[1].Method)
}
