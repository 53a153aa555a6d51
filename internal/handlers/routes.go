package handlers

import (
	"net/http"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/auth"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all API routes. Operations flagged with
// auth.MetadataKey are guarded by the bearer auth middleware.
func RegisterRoutes(api huma.API, authHandler *AuthHandler, userHandler *UserHandler, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Authenticate user and return a bearer token",
		Tags:        []string{"Auth"},
	}, authHandler.Login)

	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Create a new user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, userHandler.Register)

	huma.Register(api, huma.Operation{
		OperationID:   "create-short-url",
		Method:        http.MethodPost,
		Path:          "/",
		Summary:       "Create a shortened URL",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
		Metadata: map[string]any{
			auth.MetadataKey: true,
		},
	}, urlHandler.CreateShortURL)

	huma.Register(api, huma.Operation{
		OperationID: "list-urls",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Get all shortened URLs for the authenticated user",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			auth.MetadataKey: true,
		},
	}, urlHandler.ListURLs)

	huma.Register(api, huma.Operation{
		OperationID: "get-url-stats",
		Method:      http.MethodGet,
		Path:        "/stats/{shortCode}",
		Summary:     "Get stats for a shortened URL",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			auth.MetadataKey: true,
		},
	}, urlHandler.GetStats)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/{shortCode}",
		Summary:     "Redirect to the original URL using a short code",
		Tags:        []string{"URLs"},
	}, urlHandler.RedirectToURL)

	huma.Register(api, huma.Operation{
		OperationID: "delete-url",
		Method:      http.MethodDelete,
		Path:        "/{shortCode}",
		Summary:     "Delete a shortened URL",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			auth.MetadataKey: true,
		},
	}, urlHandler.DeleteURL)
}
