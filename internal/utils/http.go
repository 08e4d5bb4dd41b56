package utils

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      int    `json:"code,omitempty"`
	Required  *int   `json:"required,omitempty"`
	Available *int   `json:"available,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// WriteError translates a taxonomy error into an HTTP response. Internal
// failures are logged with their cause and surfaced as a generic message.
func WriteError(c echo.Context, err error) error {
	appErr := apperr.Wrap(err, "Internal server error")

	switch appErr.Kind {
	case apperr.KindInternal:
		logger.Error("internal error",
			logger.String("path", c.Request().URL.Path),
			logger.Err(appErr),
		)
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	case apperr.KindInsufficientCredits:
		required, available := appErr.Required, appErr.Available
		return c.JSON(appErr.HTTPStatus(), ErrorResponse{
			Success:   false,
			Error:     appErr.Message,
			Code:      appErr.HTTPStatus(),
			Required:  &required,
			Available: &available,
		})
	case apperr.KindRateLimited:
		c.Response().Header().Set("Retry-After", strconv.Itoa(int(appErr.RetryAfter.Seconds())))
		return ErrorResponseHandler(c, appErr.HTTPStatus(), appErr.Message)
	default:
		return ErrorResponseHandler(c, appErr.HTTPStatus(), appErr.Message)
	}
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
