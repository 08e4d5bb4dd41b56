package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/token"
	"github.com/gideonbanks/needed/services/request/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Token: models.TokenConfig{
			Secret:            "test-secret",
			SendTTLMinutes:    30,
			SessionTTLMinutes: 1440,
		},
		Dispatch: models.DispatchConfig{
			BatchSize:  3,
			MaxBatches: 0,
		},
	}
}

func validCreateInput() *models.CreateRequestInput {
	return &models.CreateRequestInput{
		ServiceSlug: "plumber",
		TimeNeed:    models.TimeNeedNow,
		Suburb:      "Ponsonby",
		Latitude:    -36.8485,
		Longitude:   174.7633,
		Details:     "Burst pipe under the kitchen sink",
		Phone:       "+64211234567",
	}
}

func TestCreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockMatchGW := mocks.NewMockMatchGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	cfg := testConfig()
	serviceID := uuid.New()
	customerID := uuid.New()

	mockRepo.EXPECT().
		GetActiveServiceBySlug(gomock.Any(), "plumber").
		Return(&models.Service{ID: serviceID, Name: "Plumber", Slug: "plumber", IsActive: true}, nil)

	mockRepo.EXPECT().
		UpsertCustomerByPhone(gomock.Any(), "0211234567").
		Return(&models.Customer{ID: customerID, Phone: "0211234567"}, nil)

	var storedReq *models.Request
	mockRepo.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.Request) error {
			storedReq = req
			return nil
		})

	uc := NewRequestUC(cfg, mockRepo, mockMatchGW, mockEventGW)

	result, err := uc.CreateRequest(context.Background(), validCreateInput())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, storedReq.ID, result.RequestID)
	assert.Equal(t, models.RequestStatusDraft, storedReq.Status)
	assert.Equal(t, serviceID, storedReq.ServiceID)
	assert.Equal(t, customerID, storedReq.CustomerID)
	assert.NotEmpty(t, storedReq.Geohash)

	// The minted token must decode and cover the stored request
	payload, err := token.DecodeSend(result.SendToken, cfg.Token.Secret, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, storedReq.ID, payload.RequestID)
	assert.Equal(t, customerID, payload.CustomerID)
}

func TestCreateRequest_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(testConfig(), mockRepo, mocks.NewMockMatchGW(ctrl), mocks.NewMockEventGW(ctrl))

	tests := []struct {
		name   string
		mutate func(*models.CreateRequestInput)
	}{
		{"missing service", func(in *models.CreateRequestInput) { in.ServiceSlug = "" }},
		{"bad time need", func(in *models.CreateRequestInput) { in.TimeNeed = "whenever" }},
		{"missing suburb", func(in *models.CreateRequestInput) { in.Suburb = "" }},
		{"missing details", func(in *models.CreateRequestInput) { in.Details = "" }},
		{"bad coordinates", func(in *models.CreateRequestInput) { in.Latitude = 123.0 }},
		{"missing phone", func(in *models.CreateRequestInput) { in.Phone = "" }},
		{"malformed phone", func(in *models.CreateRequestInput) { in.Phone = "not-a-phone" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(input)

			result, err := uc.CreateRequest(context.Background(), input)

			assert.Nil(t, result)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestCreateRequest_UnknownService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockRepo.EXPECT().
		GetActiveServiceBySlug(gomock.Any(), "plumber").
		Return(nil, sql.ErrNoRows)

	uc := NewRequestUC(testConfig(), mockRepo, mocks.NewMockMatchGW(ctrl), mocks.NewMockEventGW(ctrl))

	result, err := uc.CreateRequest(context.Background(), validCreateInput())

	assert.Nil(t, result)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateRequest_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockRepo.EXPECT().
		GetActiveServiceBySlug(gomock.Any(), "plumber").
		Return(&models.Service{ID: uuid.New(), Slug: "plumber", IsActive: true}, nil)
	mockRepo.EXPECT().
		UpsertCustomerByPhone(gomock.Any(), gomock.Any()).
		Return(&models.Customer{ID: uuid.New()}, nil)
	mockRepo.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(errors.New("database connection error"))

	uc := NewRequestUC(testConfig(), mockRepo, mocks.NewMockMatchGW(ctrl), mocks.NewMockEventGW(ctrl))

	result, err := uc.CreateRequest(context.Background(), validCreateInput())

	assert.Nil(t, result)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestGetRequestStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	summary := &models.RequestStatusSummary{
		RequestID:   requestID,
		Status:      models.RequestStatusSent,
		ServiceName: "Plumber",
		TimeNeed:    models.TimeNeedNow,
		Suburb:      "Ponsonby",
		Batches:     1,
		Dispatched:  3,
	}

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockRepo.EXPECT().
		GetStatusSummary(gomock.Any(), requestID).
		Return(summary, nil)

	uc := NewRequestUC(testConfig(), mockRepo, mocks.NewMockMatchGW(ctrl), mocks.NewMockEventGW(ctrl))

	got, err := uc.GetRequestStatus(context.Background(), requestID)

	assert.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestGetRequestStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockRepo.EXPECT().
		GetStatusSummary(gomock.Any(), gomock.Any()).
		Return(nil, sql.ErrNoRows)

	uc := NewRequestUC(testConfig(), mockRepo, mocks.NewMockMatchGW(ctrl), mocks.NewMockEventGW(ctrl))

	got, err := uc.GetRequestStatus(context.Background(), uuid.New())

	assert.Nil(t, got)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
