package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/utils"
	"github.com/gideonbanks/needed/services/request"
)

// RequestHandler handles HTTP requests for customer request operations
type RequestHandler struct {
	requestUC request.RequestUC
}

// NewRequestHandler creates a new request HTTP handler
func NewRequestHandler(requestUC request.RequestUC) *RequestHandler {
	return &RequestHandler{
		requestUC: requestUC,
	}
}

type sendRequest struct {
	SendToken string `json:"sendToken"`
}

type resendRequest struct {
	SendToken   string `json:"sendToken"`
	BatchNumber int    `json:"batchNumber"`
}

// CreateRequest handles new customer request submissions
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var input models.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.requestUC.CreateRequest(c.Request().Context(), &input)
	if err != nil {
		return utils.WriteError(c, err)
	}

	logger.Info("request created",
		logger.String("request_id", result.RequestID.String()),
		logger.String("service", input.ServiceSlug),
		logger.String("client_ip", c.RealIP()))

	return utils.SuccessResponse(c, http.StatusCreated, "Request created", result)
}

// SendRequest dispatches the first provider batch for a draft request
func (h *RequestHandler) SendRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.SendToken == "" {
		return utils.BadRequestResponse(c, "sendToken is required")
	}

	result, err := h.requestUC.SendFirstBatch(c.Request().Context(), requestID, req.SendToken)
	if err != nil {
		return utils.WriteError(c, err)
	}

	logger.Info("request dispatched",
		logger.String("request_id", requestID.String()),
		logger.Int("batch_number", result.BatchNumber),
		logger.Int("providers", len(result.ProviderIDs)))

	return utils.SuccessResponse(c, http.StatusOK, "Request sent", result)
}

// ResendRequest dispatches a further provider batch for a request
func (h *RequestHandler) ResendRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var req resendRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.SendToken == "" {
		return utils.BadRequestResponse(c, "sendToken is required")
	}
	if req.BatchNumber < 0 {
		return utils.BadRequestResponse(c, "batchNumber must not be negative")
	}

	result, err := h.requestUC.ResendBatch(c.Request().Context(), requestID, req.SendToken, req.BatchNumber)
	if err != nil {
		return utils.WriteError(c, err)
	}

	logger.Info("request redispatched",
		logger.String("request_id", requestID.String()),
		logger.Int("batch_number", result.BatchNumber),
		logger.Int("providers", len(result.ProviderIDs)))

	return utils.SuccessResponse(c, http.StatusOK, "Request resent", result)
}

// GetRequestStatus handles the customer status poll
func (h *RequestHandler) GetRequestStatus(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	summary, err := h.requestUC.GetRequestStatus(c.Request().Context(), requestID)
	if err != nil {
		return utils.WriteError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}
