package services

import (
	"context"
	"net/url"
	"strconv"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"
)

// MonthlyLimitService manages the per-month spending limit.
type MonthlyLimitService struct {
	config *Config
	ajax   Transport
}

func NewMonthlyLimitService(config *Config, transport Transport) *MonthlyLimitService {
	return &MonthlyLimitService{config: config, ajax: transport}
}

func (s *MonthlyLimitService) AddMonthlyLimit(ctx context.Context, p params.AddMonthlyLimitParams) (models.MonthlyLimit, error) {
	resp := s.ajax.Post(ctx, join(s.config.BaseURL, "v0", "monthly-limit", "add"), p, nil)
	if !resp.IsOK() {
		return models.MonthlyLimit{}, newAPIError(resp)
	}
	return ajax.Decode[models.MonthlyLimit](resp)
}

// GetMonthlyLimitByUserID looks up the single limit for (user, month, year).
func (s *MonthlyLimitService) GetMonthlyLimitByUserID(ctx context.Context, p params.GetMonthlyLimitParams) (models.MonthlyLimit, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(int(p.Month)))
	query.Set("year", strconv.Itoa(int(p.Year)))

	resp := s.ajax.Get(ctx, join(s.config.BaseURL, "v0", "monthly-limit", string(p.UserID)), query, nil)
	if !resp.IsOK() {
		return models.MonthlyLimit{}, newAPIError(resp)
	}
	return ajax.Decode[models.MonthlyLimit](resp)
}

func (s *MonthlyLimitService) UpdateMonthlyLimit(ctx context.Context, p params.UpdateMonthlyLimitParams) (models.MonthlyLimit, error) {
	resp := s.ajax.Put(ctx, join(s.config.BaseURL, "v0", "monthly-limit", string(p.ID)), p, nil)
	if !resp.IsOK() {
		return models.MonthlyLimit{}, newAPIError(resp)
	}
	return ajax.Decode[models.MonthlyLimit](resp)
}

func (s *MonthlyLimitService) DeleteMonthlyLimit(ctx context.Context, id primitives.MonthlyLimitID) error {
	resp := s.ajax.Delete(ctx, join(s.config.BaseURL, "v0", "monthly-limit", string(id)), nil)
	if !resp.IsOK() {
		return newAPIError(resp)
	}
	return nil
}
