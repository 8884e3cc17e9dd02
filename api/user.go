package api

import (
	"context"
	"fmt"
	"net/url"
)

// Credentials are the raw login inputs. Only login, register and the
// password-reset flow take credentials instead of a bearer token.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateAccountRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Photo    string `json:"photo,omitempty"`
	Password string `json:"password,omitempty"`
}

// UserService covers the account and auth endpoints.
type UserService interface {
	Login(ctx context.Context, credentials Credentials) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
	AuthUser(ctx context.Context, token string) (*User, error)
	UpdateAccount(ctx context.Context, req UpdateAccountRequest, token string) (*User, error)
	DeleteAccount(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) (*MessageResponse, error)
	ResetPassword(ctx context.Context, userID, resetToken, password string) (*MessageResponse, error)
}

type userService struct {
	client *Client
}

// NewUserService creates the account/auth service over the base client.
func NewUserService(client *Client) UserService {
	return &userService{client: client}
}

func (s *userService) Login(ctx context.Context, credentials Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.client.post(ctx, "/auth/login", "", credentials, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.client.post(ctx, "/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var out TokenResponse
	if err := s.client.post(ctx, "/auth/refresh-token", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) AuthUser(ctx context.Context, token string) (*User, error) {
	var out User
	if err := s.client.get(ctx, "/auth", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) UpdateAccount(ctx context.Context, req UpdateAccountRequest, token string) (*User, error) {
	var out User
	if err := s.client.patch(ctx, "/auth/update-account", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) DeleteAccount(ctx context.Context, token string) error {
	return s.client.delete(ctx, "/auth/delete-account", token, nil)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	body := map[string]string{"email": email}
	var out MessageResponse
	if err := s.client.post(ctx, "/auth/forgot-password", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) ResetPassword(ctx context.Context, userID, resetToken, password string) (*MessageResponse, error) {
	body := map[string]string{"password": password}
	path := fmt.Sprintf("/auth/reset-password/%s/%s", url.PathEscape(userID), url.PathEscape(resetToken))
	var out MessageResponse
	if err := s.client.patch(ctx, path, "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
