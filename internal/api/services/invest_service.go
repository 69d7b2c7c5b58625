package services

import (
	"context"
	"net/url"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"
)

// InvestService manages investment positions.
type InvestService struct {
	config *Config
	ajax   Transport
}

func NewInvestService(config *Config, transport Transport) *InvestService {
	return &InvestService{config: config, ajax: transport}
}

func (s *InvestService) AddInvest(ctx context.Context, p params.AddInvestParams) (models.Invest, error) {
	resp := s.ajax.Post(ctx, join(s.config.BaseURL, "v0", "invest", "add"), p, nil)
	if !resp.IsOK() {
		return models.Invest{}, newAPIError(resp)
	}
	return ajax.Decode[models.Invest](resp)
}

// GetInvestByUserID lists a user's investments filtered by status.
func (s *InvestService) GetInvestByUserID(ctx context.Context, p params.GetInvestParams) ([]models.Invest, error) {
	query := url.Values{}
	query.Set("status", string(p.Status))

	resp := s.ajax.Get(ctx, join(s.config.BaseURL, "v0", "invest", string(p.UserID)), query, nil)
	if !resp.IsOK() {
		return nil, newAPIError(resp)
	}
	return ajax.Decode[[]models.Invest](resp)
}

func (s *InvestService) UpdateInvest(ctx context.Context, p params.UpdateInvestParams) (models.Invest, error) {
	resp := s.ajax.Put(ctx, join(s.config.BaseURL, "v0", "invest", string(p.ID)), p, nil)
	if !resp.IsOK() {
		return models.Invest{}, newAPIError(resp)
	}
	return ajax.Decode[models.Invest](resp)
}

func (s *InvestService) DeleteInvest(ctx context.Context, id primitives.InvestID) error {
	resp := s.ajax.Delete(ctx, join(s.config.BaseURL, "v0", "invest", string(id)), nil)
	if !resp.IsOK() {
		return newAPIError(resp)
	}
	return nil
}
