package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/session"
	"github.com/gideonbanks/needed/internal/utils"
	"github.com/gideonbanks/needed/services/provider"
)

// ProviderHandler handles HTTP requests for provider operations
type ProviderHandler struct {
	providerUC provider.ProviderUC
	sessions   *session.Store
}

// NewProviderHandler creates a new provider HTTP handler
func NewProviderHandler(providerUC provider.ProviderUC, sessions *session.Store) *ProviderHandler {
	return &ProviderHandler{
		providerUC: providerUC,
		sessions:   sessions,
	}
}

// ListLeads returns the provider's lead inbox
func (h *ProviderHandler) ListLeads(c echo.Context) error {
	providerID, ok := session.ProviderID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	leads, err := h.providerUC.ListLeads(c.Request().Context(), providerID)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", leads)
}

// ContactAction charges the provider for contacting a lead
func (h *ProviderHandler) ContactAction(c echo.Context) error {
	providerID, ok := session.ProviderID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ContactActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.providerUC.ChargeForContact(c.Request().Context(), providerID, &req)
	if err != nil {
		return utils.WriteError(c, err)
	}

	logger.Info("contact action settled",
		logger.String("provider_id", providerID.String()),
		logger.String("dispatch_id", req.DispatchID.String()),
		logger.Int("cost", result.CreditCost),
		logger.Bool("already_contacted", result.AlreadyContacted))

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
