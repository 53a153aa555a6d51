package handlers

import (
	"context"
	"errors"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/auth"
	"github.com/danielgtaylor/huma/v2"
)

// AuthHandler handles authentication operations.
type AuthHandler struct {
	auth *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login verifies the submitted credentials and returns a signed bearer token.
func (h *AuthHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	u, token, err := h.auth.Login(ctx, req.Body.Email, req.Body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("invalid credentials")
		}

		return nil, huma.Error500InternalServerError("failed to authenticate")
	}

	resp := &LoginResponse{}
	resp.Body.User = UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
	resp.Body.Token = token

	return resp, nil
}
