package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// Pinger defines the interface for checking storage backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles health check operations.
type Handler struct {
	storage Pinger
}

// NewHandler creates a new health handler.
func NewHandler(storage Pinger) *Handler {
	return &Handler{storage: storage}
}

// Response is the response for the health check endpoint.
type Response struct {
	Body struct {
		Status  string `json:"status"`
		Storage string `json:"storage"`
	}
}

// Check performs a health check of the application and its storage backend.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"

	if err := h.storage.Ping(ctx); err != nil {
		resp.Body.Storage = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Storage = "healthy"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
