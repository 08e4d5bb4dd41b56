package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/session"
	"github.com/gideonbanks/needed/services/provider"
	httpHandler "github.com/gideonbanks/needed/services/provider/handler/http"
)

// Handler combines all handlers for the provider service
type Handler struct {
	providerHTTP *httpHandler.ProviderHandler
	sessions     *session.Store
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(providerUC provider.ProviderUC, sessions *session.Store, cfg *models.Config) *Handler {
	return &Handler{
		providerHTTP: httpHandler.NewProviderHandler(providerUC, sessions),
		sessions:     sessions,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Auth endpoints are open;
// everything else requires a valid session cookie.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/provider/auth")
	auth.POST("/otp", h.providerHTTP.RequestOTP)
	auth.POST("/verify", h.providerHTTP.VerifyOTP)
	auth.POST("/logout", h.providerHTTP.Logout)

	gated := e.Group("/api/provider", h.sessions.Middleware())
	gated.GET("/me", h.providerHTTP.Me)
	gated.GET("/leads", h.providerHTTP.ListLeads)
	gated.POST("/actions", h.providerHTTP.ContactAction)
}
