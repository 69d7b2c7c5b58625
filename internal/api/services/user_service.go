package services

import (
	"context"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/params"
	"trackwallet/internal/api/primitives"
)

// UserService manages the user profile. The API exposes no user delete.
type UserService struct {
	config *Config
	ajax   Transport
}

func NewUserService(config *Config, transport Transport) *UserService {
	return &UserService{config: config, ajax: transport}
}

// AddUser creates the profile record for a newly authenticated user.
func (s *UserService) AddUser(ctx context.Context, p params.AddUserParams) (models.User, error) {
	resp := s.ajax.Post(ctx, join(s.config.BaseURL, "v0", "user", "add"), p, nil)
	if !resp.IsOK() {
		return models.User{}, newAPIError(resp)
	}
	return ajax.Decode[models.User](resp)
}

func (s *UserService) GetUser(ctx context.Context, userID primitives.UserID) (models.User, error) {
	resp := s.ajax.Get(ctx, join(s.config.BaseURL, "v0", "user", string(userID)), nil, nil)
	if !resp.IsOK() {
		return models.User{}, newAPIError(resp)
	}
	return ajax.Decode[models.User](resp)
}

func (s *UserService) UpdateUser(ctx context.Context, p params.UpdateUserParams) (models.User, error) {
	resp := s.ajax.Put(ctx, join(s.config.BaseURL, "v0", "user", string(p.UserID)), p, nil)
	if !resp.IsOK() {
		return models.User{}, newAPIError(resp)
	}
	return ajax.Decode[models.User](resp)
}
