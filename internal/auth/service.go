package auth

import (
	"context"
	"errors"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service verifies credentials against the user store and issues tokens.
type Service struct {
	users  user.Repository
	issuer *TokenIssuer
}

// NewService creates a new auth service.
func NewService(users user.Repository, issuer *TokenIssuer) *Service {
	return &Service{
		users:  users,
		issuer: issuer,
	}
}

// Login checks the email/password pair and returns the user with a signed token.
// Unknown emails and bcrypt mismatches are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(u)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}
