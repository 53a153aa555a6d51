package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned when a token fails verification.
var ErrInvalidToken = errors.New("token is not valid")

// Claims carries the authenticated user identity inside a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenIssuer signs and verifies bearer tokens. Issuance is stateless:
// nothing is persisted, the signature is the only proof of validity.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer signing with the given HMAC secret.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the user's id and email.
func (t *TokenIssuer) Issue(u *user.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Email: u.Email,
	})

	return token.SignedString(t.secret)
}

// Verify parses a token string and returns its claims.
// Any parse, signature, or expiry failure maps to ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			return t.secret, nil
		})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
