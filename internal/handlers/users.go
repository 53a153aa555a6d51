package handlers

import (
	"context"
	"errors"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
	"github.com/danielgtaylor/huma/v2"
)

// UserHandler handles account registration.
type UserHandler struct {
	users *user.Service
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService *user.Service) *UserHandler {
	return &UserHandler{users: userService}
}

// Register creates a new account.
func (h *UserHandler) Register(ctx context.Context, req *RegisterUserRequest) (*RegisterUserResponse, error) {
	u, err := h.users.Register(ctx, req.Body.Email, req.Body.Username, req.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest("email, username and a password of at least 6 characters are required")
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error409Conflict("email already registered")
		default:
			return nil, huma.Error500InternalServerError("failed to create user")
		}
	}

	resp := &RegisterUserResponse{}
	resp.Body = UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}

	return resp, nil
}
