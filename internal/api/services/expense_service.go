package services

import (
	"context"
	"net/url"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"
)

// ExpenseService manages expense records.
type ExpenseService struct {
	config *Config
	ajax   Transport
}

func NewExpenseService(config *Config, transport Transport) *ExpenseService {
	return &ExpenseService{config: config, ajax: transport}
}

func (s *ExpenseService) AddExpense(ctx context.Context, p params.AddExpenseParams) (models.Expense, error) {
	resp := s.ajax.Post(ctx, join(s.config.BaseURL, "v0", "expense", "add"), p, nil)
	if !resp.IsOK() {
		return models.Expense{}, newAPIError(resp)
	}
	return ajax.Decode[models.Expense](resp)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, p params.UpdateExpenseParams) (models.Expense, error) {
	resp := s.ajax.Put(ctx, join(s.config.BaseURL, "v0", "expense", string(p.ID)), p, nil)
	if !resp.IsOK() {
		return models.Expense{}, newAPIError(resp)
	}
	return ajax.Decode[models.Expense](resp)
}

// GetExpenseByUser lists a user's expenses for the month containing p.Date.
func (s *ExpenseService) GetExpenseByUser(ctx context.Context, p params.GetUserExpensesParams) ([]models.Expense, error) {
	query := url.Values{}
	query.Set("date", string(p.Date))

	resp := s.ajax.Get(ctx, join(s.config.BaseURL, "v0", "expenses", string(p.UserID)), query, nil)
	if !resp.IsOK() {
		return nil, newAPIError(resp)
	}
	return ajax.Decode[[]models.Expense](resp)
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id primitives.ExpenseID) error {
	resp := s.ajax.Delete(ctx, join(s.config.BaseURL, "v0", "expense", string(id)), nil)
	if !resp.IsOK() {
		return newAPIError(resp)
	}
	return nil
}
