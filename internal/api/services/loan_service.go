package services

import (
	"context"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"
)

// LoanService manages loans, both given and taken.
type LoanService struct {
	config *Config
	ajax   Transport
}

func NewLoanService(config *Config, transport Transport) *LoanService {
	return &LoanService{config: config, ajax: transport}
}

func (s *LoanService) AddLoan(ctx context.Context, p params.AddLoanParams) (models.Loan, error) {
	resp := s.ajax.Post(ctx, join(s.config.BaseURL, "v0", "loan", "add"), p, nil)
	if !resp.IsOK() {
		return models.Loan{}, newAPIError(resp)
	}
	return ajax.Decode[models.Loan](resp)
}

func (s *LoanService) GetLoanByUserID(ctx context.Context, userID primitives.UserID) ([]models.Loan, error) {
	resp := s.ajax.Get(ctx, join(s.config.BaseURL, "v0", "loan", string(userID)), nil, nil)
	if !resp.IsOK() {
		return nil, newAPIError(resp)
	}
	return ajax.Decode[[]models.Loan](resp)
}

func (s *LoanService) UpdateLoan(ctx context.Context, p params.UpdateLoanParams) (models.Loan, error) {
	resp := s.ajax.Put(ctx, join(s.config.BaseURL, "v0", "loan", string(p.ID)), p, nil)
	if !resp.IsOK() {
		return models.Loan{}, newAPIError(resp)
	}
	return ajax.Decode[models.Loan](resp)
}

func (s *LoanService) DeleteLoan(ctx context.Context, id primitives.LoanID) error {
	resp := s.ajax.Delete(ctx, join(s.config.BaseURL, "v0", "loan", string(id)), nil)
	if !resp.IsOK() {
		return newAPIError(resp)
	}
	return nil
}
