package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/services/request/mocks"
)

func newRequestContext(t *testing.T, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestNewRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.requestUC)
}

func TestRequestHandler_CreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	expected := &models.CreateRequestResult{
		RequestID: uuid.New(),
		SendToken: "signed-token",
	}
	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(expected, nil)

	body := map[string]interface{}{
		"serviceSlug": "plumber",
		"timeNeed":    "now",
		"suburb":      "Ponsonby",
		"lat":         -36.8485,
		"lng":         174.7633,
		"details":     "Burst pipe",
		"phone":       "+64211234567",
	}
	c, recorder := newRequestContext(t, http.MethodPost, "/api/requests", body)

	err := handler.CreateRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			RequestID string `json:"requestId"`
			SendToken string `json:"sendToken"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, expected.RequestID.String(), resp.Data.RequestID)
	assert.Equal(t, "signed-token", resp.Data.SendToken)
}

func TestRequestHandler_CreateRequest_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Validation("Suburb is required"))

	c, recorder := newRequestContext(t, http.MethodPost, "/api/requests", map[string]interface{}{})

	err := handler.CreateRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRequestHandler_SendRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	requestID := uuid.New()
	result := &models.DispatchResult{
		ProviderIDs: []uuid.UUID{uuid.New(), uuid.New()},
		BatchNumber: 1,
	}
	mockUC.EXPECT().
		SendFirstBatch(gomock.Any(), requestID, "signed-token").
		Return(result, nil)

	c, recorder := newRequestContext(t, http.MethodPost, "/", map[string]string{"sendToken": "signed-token"})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.SendRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequestHandler_SendRequest_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRequestHandler(mocks.NewMockRequestUC(ctrl))

	c, recorder := newRequestContext(t, http.MethodPost, "/", map[string]string{"sendToken": "tok"})
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.SendRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRequestHandler_SendRequest_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRequestHandler(mocks.NewMockRequestUC(ctrl))

	c, recorder := newRequestContext(t, http.MethodPost, "/", map[string]string{})
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := handler.SendRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRequestHandler_SendRequest_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	requestID := uuid.New()
	mockUC.EXPECT().
		SendFirstBatch(gomock.Any(), requestID, "signed-token").
		Return(nil, apperr.Conflict("Request already sent or status changed"))

	c, recorder := newRequestContext(t, http.MethodPost, "/", map[string]string{"sendToken": "signed-token"})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.SendRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRequestHandler_ResendRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	requestID := uuid.New()
	result := &models.DispatchResult{
		ProviderIDs: []uuid.UUID{uuid.New()},
		BatchNumber: 2,
	}
	mockUC.EXPECT().
		ResendBatch(gomock.Any(), requestID, "signed-token", 2).
		Return(result, nil)

	body := map[string]interface{}{"sendToken": "signed-token", "batchNumber": 2}
	c, recorder := newRequestContext(t, http.MethodPost, "/", body)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.ResendRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequestHandler_ResendRequest_UnauthorizedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	requestID := uuid.New()
	mockUC.EXPECT().
		ResendBatch(gomock.Any(), requestID, "stolen-token", 0).
		Return(nil, apperr.Unauthorized("Token does not match request"))

	c, recorder := newRequestContext(t, http.MethodPost, "/", map[string]interface{}{"sendToken": "stolen-token"})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.ResendRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequestHandler_GetRequestStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	requestID := uuid.New()
	summary := &models.RequestStatusSummary{
		RequestID:   requestID,
		Status:      models.RequestStatusSent,
		ServiceName: "Plumber",
		Batches:     1,
		Dispatched:  3,
	}
	mockUC.EXPECT().
		GetRequestStatus(gomock.Any(), requestID).
		Return(summary, nil)

	c, recorder := newRequestContext(t, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.GetRequestStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequestHandler_GetRequestStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)

	requestID := uuid.New()
	mockUC.EXPECT().
		GetRequestStatus(gomock.Any(), requestID).
		Return(nil, apperr.NotFound("Request not found"))

	c, recorder := newRequestContext(t, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.GetRequestStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
