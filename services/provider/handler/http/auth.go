package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/session"
	"github.com/gideonbanks/needed/internal/utils"
)

// RequestOTP handles login code requests
func (h *ProviderHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone is required")
	}

	if err := h.providerUC.RequestOTP(c.Request().Context(), req.Phone); err != nil {
		return utils.WriteError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login code sent", nil)
}

// VerifyOTP handles login code verification and opens the session
func (h *ProviderHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Phone == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Phone and code are required")
	}

	summary, err := h.providerUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		return utils.WriteError(c, err)
	}

	if err := h.sessions.Set(c, summary.ID); err != nil {
		logger.Error("failed to set session cookie",
			logger.String("provider_id", summary.ID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	logger.Info("provider logged in",
		logger.String("provider_id", summary.ID.String()))

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", summary)
}

// Logout clears the session cookie. Tokens are stateless so there is
// nothing to revoke server side.
func (h *ProviderHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me returns the logged-in provider's profile
func (h *ProviderHandler) Me(c echo.Context) error {
	providerID, ok := session.ProviderID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.providerUC.GetProfile(c.Request().Context(), providerID)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}
