package middleware

import (
	"net/http"
	"strings"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/auth"
	"github.com/danielgtaylor/huma/v2"
)

// Verifier checks a bearer token and returns its claims.
type Verifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth returns a Huma middleware enforcing bearer authentication on
// operations flagged with auth.MetadataKey. On success the identity from
// the token is added to the request context.
func Auth(api huma.API, verifier Verifier) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if required, _ := ctx.Operation().Metadata[auth.MetadataKey].(bool); !required {
			next(ctx)

			return
		}

		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")

			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")

			return
		}

		newCtx := auth.ContextWithIdentity(ctx.Context(), auth.Identity{
			UserID: claims.Subject,
			Email:  claims.Email,
		})
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "

	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	return token, token != ""
}
