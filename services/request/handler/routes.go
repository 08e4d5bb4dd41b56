package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/ratelimit"
	"github.com/gideonbanks/needed/services/request"
	httpHandler "github.com/gideonbanks/needed/services/request/handler/http"
)

// Handler combines all handlers for the request service
type Handler struct {
	requestHTTP *httpHandler.RequestHandler
	limiter     *ratelimit.Limiter
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(requestUC request.RequestUC, limiter *ratelimit.Limiter, cfg *models.Config) *Handler {
	return &Handler{
		requestHTTP: httpHandler.NewRequestHandler(requestUC),
		limiter:     limiter,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Creation is rate limited per
// client; send and resend are guarded by the send token instead.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	limited := ratelimit.Middleware(h.limiter, h.cfg.RateLimit.Max, h.cfg.App.IsProduction())

	api := e.Group("/api")
	api.POST("/requests", h.requestHTTP.CreateRequest, limited)
	api.POST("/requests/:id/send", h.requestHTTP.SendRequest)
	api.POST("/requests/:id/resend", h.requestHTTP.ResendRequest)
	api.GET("/requests/:id", h.requestHTTP.GetRequestStatus)
}
