package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/auth"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/shortener"
	"github.com/danielgtaylor/huma/v2"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// URLHandler handles URL shortening operations.
type URLHandler struct {
	urls    *shortener.Service
	baseURL string
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(urls *shortener.Service, baseURL string) *URLHandler {
	return &URLHandler{
		urls:    urls,
		baseURL: baseURL,
	}
}

// CreateShortURL shortens a URL on behalf of the authenticated user.
func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	identity := auth.IdentityFromContext(ctx)
	if identity.UserID == "" {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	shortURL, err := h.urls.Shorten(ctx, req.Body.OriginalURL, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			return nil, huma.Error400BadRequest("originalUrl must be a well-formed absolute URL")
		case errors.Is(err, shortener.ErrConflict):
			return nil, huma.Error409Conflict("failed to generate unique short code")
		default:
			return nil, huma.Error500InternalServerError("failed to save url")
		}
	}

	resp := &CreateShortURLResponse{}
	resp.Body.OriginalURL = shortURL.OriginalURL
	resp.Body.ShortCode = shortURL.ShortCode
	resp.Body.ShortURL = h.shortLink(shortURL.ShortCode)
	resp.Body.Clicks = shortURL.Clicks

	return resp, nil
}

// RedirectToURL resolves a short code and redirects to the original URL.
func (h *URLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	shortURL, err := h.urls.FindByShortCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	resp := &RedirectResponse{
		Status: http.StatusFound,
	}
	resp.Headers.Location = shortURL.OriginalURL

	return resp, nil
}

// ListURLs returns one page of the authenticated user's URLs, newest first.
func (h *URLHandler) ListURLs(ctx context.Context, req *ListURLsRequest) (*ListURLsResponse, error) {
	identity := auth.IdentityFromContext(ctx)
	if identity.UserID == "" {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	page := req.Page
	if page < 1 {
		page = defaultPage
	}

	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	skip := (page - 1) * limit

	urls, total, err := h.urls.FindAllByUser(ctx, identity.UserID, skip, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list urls")
	}

	data := make([]URLInfo, 0, len(urls))
	for _, shortURL := range urls {
		data = append(data, URLInfo{
			ID:          shortURL.ID,
			OriginalURL: shortURL.OriginalURL,
			ShortCode:   shortURL.ShortCode,
			ShortURL:    h.shortLink(shortURL.ShortCode),
			Clicks:      shortURL.Clicks,
			CreatedAt:   shortURL.CreatedAt,
		})
	}

	resp := &ListURLsResponse{}
	resp.Body.Total = total
	resp.Body.Page = page
	resp.Body.Limit = limit
	resp.Body.TotalPages = (total + int64(limit) - 1) / int64(limit)
	resp.Body.Data = data

	return resp, nil
}

// GetStats returns the stats view of a short URL.
func (h *URLHandler) GetStats(ctx context.Context, req *StatsRequest) (*StatsResponse, error) {
	shortURL, err := h.urls.FindByShortCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	resp := &StatsResponse{}
	resp.Body.Clicks = shortURL.Clicks
	resp.Body.OriginalURL = shortURL.OriginalURL
	resp.Body.CreatedAt = shortURL.CreatedAt

	return resp, nil
}

// DeleteURL removes a short URL owned by the authenticated user.
func (h *URLHandler) DeleteURL(ctx context.Context, req *DeleteURLRequest) (*DeleteURLResponse, error) {
	identity := auth.IdentityFromContext(ctx)
	if identity.UserID == "" {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	if err := h.urls.Delete(ctx, req.Code, identity.UserID); err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("url not found")
		}

		return nil, huma.Error500InternalServerError("failed to delete url")
	}

	resp := &DeleteURLResponse{}
	resp.Body.Message = "URL deleted successfully"

	return resp, nil
}

func (h *URLHandler) shortLink(code string) string {
	return fmt.Sprintf("%s/%s", h.baseURL, code)
}
