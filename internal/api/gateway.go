// Package api wires the TrackWallet client together: one configuration,
// one transport, five resource services.
package api

import (
	"net/http"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/primitives"
	"trackwallet/internal/api/services"
	"trackwallet/pkg/logger"
)

// Gateway is the composition root for the API client. Exactly one ajax
// client backs all services, so SetAccessToken authenticates every
// subsequent call through any of them. Construct it once and pass it down.
type Gateway struct {
	Config *services.Config
	Ajax   *ajax.Client

	UserService         *services.UserService
	ExpenseService      *services.ExpenseService
	MonthlyLimitService *services.MonthlyLimitService
	LoanService         *services.LoanService
	InvestService       *services.InvestService
}

// New builds a gateway for the given base URL. A nil httpClient falls back
// to a plain client with no timeout.
func New(baseURL primitives.URLString, httpClient *http.Client) *Gateway {
	config := services.NewConfig(baseURL)
	transport := ajax.NewClient(httpClient, logger.Get())

	return &Gateway{
		Config: config,
		Ajax:   transport,

		UserService:         services.NewUserService(config, transport),
		ExpenseService:      services.NewExpenseService(config, transport),
		MonthlyLimitService: services.NewMonthlyLimitService(config, transport),
		LoanService:         services.NewLoanService(config, transport),
		InvestService:       services.NewInvestService(config, transport),
	}
}

// SetAccessToken sets the bearer token on the shared transport.
func (g *Gateway) SetAccessToken(token string) {
	g.Ajax.SetAccessToken(token)
}
