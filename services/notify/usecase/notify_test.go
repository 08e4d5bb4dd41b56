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

	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/services/notify/mocks"
)

func TestFormatLeadAlert(t *testing.T) {
	tests := []struct {
		name string
		in   *models.RequestNotification
		want string
	}{
		{
			"urgent job",
			&models.RequestNotification{ServiceName: "Plumber", Suburb: "Ponsonby", TimeNeed: models.TimeNeedNow},
			"New Plumber job in Ponsonby, needed right now. Log in to view the lead and contact the customer.",
		},
		{
			"today",
			&models.RequestNotification{ServiceName: "Electrician", Suburb: "Grey Lynn", TimeNeed: models.TimeNeedToday},
			"New Electrician job in Grey Lynn, needed today. Log in to view the lead and contact the customer.",
		},
		{
			"this week",
			&models.RequestNotification{ServiceName: "Lawn Mowing", Suburb: "Mt Eden", TimeNeed: models.TimeNeedThisWeek},
			"New Lawn Mowing job in Mt Eden, needed this week. Log in to view the lead and contact the customer.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatLeadAlert(tc.in))
		})
	}
}

func TestNotifyBatch_SendsToEveryProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	providerA := uuid.New()
	providerB := uuid.New()
	event := &models.DispatchEvent{
		RequestID:   requestID,
		BatchNumber: 1,
		ProviderIDs: []uuid.UUID{providerA, providerB},
		Timestamp:   time.Now(),
	}

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockRepo.EXPECT().
		GetRequestNotification(gomock.Any(), requestID).
		Return(&models.RequestNotification{
			RequestID:   requestID,
			ServiceName: "Plumber",
			Suburb:      "Ponsonby",
			TimeNeed:    models.TimeNeedNow,
		}, nil)
	mockRepo.EXPECT().
		GetProviderPhones(gomock.Any(), event.ProviderIDs).
		Return(map[uuid.UUID]string{
			providerA: "0211111111",
			providerB: "0222222222",
		}, nil)

	mockSMS := mocks.NewMockSMSGW(ctrl)
	mockSMS.EXPECT().SendSMS(gomock.Any(), "0211111111", gomock.Any()).Return(nil)
	mockSMS.EXPECT().SendSMS(gomock.Any(), "0222222222", gomock.Any()).Return(nil)

	uc := NewNotifyUC(&models.Config{}, mockRepo, mockSMS)

	err := uc.NotifyBatch(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotifyBatch_OneFailureDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	providerA := uuid.New()
	providerB := uuid.New()
	event := &models.DispatchEvent{
		RequestID:   requestID,
		ProviderIDs: []uuid.UUID{providerA, providerB},
	}

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockRepo.EXPECT().
		GetRequestNotification(gomock.Any(), requestID).
		Return(&models.RequestNotification{RequestID: requestID, ServiceName: "Plumber", Suburb: "Ponsonby", TimeNeed: models.TimeNeedNow}, nil)
	mockRepo.EXPECT().
		GetProviderPhones(gomock.Any(), event.ProviderIDs).
		Return(map[uuid.UUID]string{providerA: "0211111111", providerB: "0222222222"}, nil)

	mockSMS := mocks.NewMockSMSGW(ctrl)
	mockSMS.EXPECT().SendSMS(gomock.Any(), "0211111111", gomock.Any()).Return(errors.New("gateway timeout"))
	mockSMS.EXPECT().SendSMS(gomock.Any(), "0222222222", gomock.Any()).Return(nil)

	uc := NewNotifyUC(&models.Config{}, mockRepo, mockSMS)

	err := uc.NotifyBatch(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotifyBatch_UnknownRequestIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &models.DispatchEvent{
		RequestID:   uuid.New(),
		ProviderIDs: []uuid.UUID{uuid.New()},
	}

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockRepo.EXPECT().
		GetRequestNotification(gomock.Any(), event.RequestID).
		Return(nil, sql.ErrNoRows)

	uc := NewNotifyUC(&models.Config{}, mockRepo, mocks.NewMockSMSGW(ctrl))

	err := uc.NotifyBatch(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotifyBatch_EmptyBatchIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewNotifyUC(&models.Config{}, mocks.NewMockNotifyRepo(ctrl), mocks.NewMockSMSGW(ctrl))

	err := uc.NotifyBatch(context.Background(), &models.DispatchEvent{RequestID: uuid.New()})

	assert.NoError(t, err)
}

func TestNotifyBatch_MissingPhoneIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	providerA := uuid.New()
	providerB := uuid.New()
	event := &models.DispatchEvent{
		RequestID:   requestID,
		ProviderIDs: []uuid.UUID{providerA, providerB},
	}

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockRepo.EXPECT().
		GetRequestNotification(gomock.Any(), requestID).
		Return(&models.RequestNotification{RequestID: requestID, ServiceName: "Plumber", Suburb: "Ponsonby", TimeNeed: models.TimeNeedNow}, nil)
	mockRepo.EXPECT().
		GetProviderPhones(gomock.Any(), event.ProviderIDs).
		Return(map[uuid.UUID]string{providerB: "0222222222"}, nil)

	mockSMS := mocks.NewMockSMSGW(ctrl)
	mockSMS.EXPECT().SendSMS(gomock.Any(), "0222222222", gomock.Any()).Return(nil)

	uc := NewNotifyUC(&models.Config{}, mockRepo, mockSMS)

	err := uc.NotifyBatch(context.Background(), event)

	assert.NoError(t, err)
}
