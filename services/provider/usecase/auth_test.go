package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/services/provider/mocks"
)

func authConfig(env string) *models.Config {
	return &models.Config{
		App: models.AppConfig{Environment: env},
		SMS: models.SMSConfig{GatewayURL: "https://sms.example.test", APIKey: "key"},
	}
}

func approvedProvider(phone string) *models.Provider {
	return &models.Provider{
		ID:           uuid.New(),
		Phone:        phone,
		BusinessName: "Ace Plumbing",
		Status:       models.ProviderStatusApproved,
		Credits:      100,
	}
}

func TestRequestOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(approvedProvider(phone), nil)

	var storedHash string
	mockRepo.EXPECT().
		StoreOTPHash(gomock.Any(), phone, gomock.Any(), 5*time.Minute).
		DoAndReturn(func(ctx context.Context, p, hash string, ttl time.Duration) error {
			storedHash = hash
			return nil
		})

	var sentMessage string
	mockSMS := mocks.NewMockSMSGW(ctrl)
	mockSMS.EXPECT().
		SendSMS(gomock.Any(), phone, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p, message string) error {
			sentMessage = message
			return nil
		})

	uc := NewProviderUC(authConfig("production"), mockRepo, mockSMS)

	err := uc.RequestOTP(context.Background(), "+64211234567")

	assert.NoError(t, err)
	assert.NotEmpty(t, storedHash)
	assert.Contains(t, sentMessage, "login code")

	// The stored hash must verify against the code in the message
	code := sentMessage[len("Your login code is ") : len("Your login code is ")+otpLength]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(code)))
}

func TestRequestOTP_UnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), gomock.Any()).
		Return(nil, sql.ErrNoRows)

	uc := NewProviderUC(authConfig("production"), mockRepo, mocks.NewMockSMSGW(ctrl))

	err := uc.RequestOTP(context.Background(), "0211234567")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRequestOTP_PendingProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	prov := approvedProvider(phone)
	prov.Status = models.ProviderStatusPending

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(prov, nil)

	uc := NewProviderUC(authConfig("production"), mockRepo, mocks.NewMockSMSGW(ctrl))

	err := uc.RequestOTP(context.Background(), phone)

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "approval")
}

func TestRequestOTP_SuspendedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	prov := approvedProvider(phone)
	prov.Status = models.ProviderStatusSuspended

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(prov, nil)

	uc := NewProviderUC(authConfig("production"), mockRepo, mocks.NewMockSMSGW(ctrl))

	err := uc.RequestOTP(context.Background(), phone)

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestRequestOTP_NoGatewayOutsideProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(approvedProvider(phone), nil)
	mockRepo.EXPECT().
		StoreOTPHash(gomock.Any(), phone, gomock.Any(), 5*time.Minute).
		Return(nil)

	cfg := authConfig("development")
	cfg.SMS.GatewayURL = ""

	// No SendSMS expectation: delivery is skipped entirely
	uc := NewProviderUC(cfg, mockRepo, mocks.NewMockSMSGW(ctrl))

	err := uc.RequestOTP(context.Background(), phone)

	assert.NoError(t, err)
}

func TestVerifyOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	code := "482917"
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	assert.NoError(t, err)

	prov := approvedProvider(phone)
	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(prov, nil)
	mockRepo.EXPECT().
		GetOTPHash(gomock.Any(), phone).
		Return(string(hash), nil)
	mockRepo.EXPECT().
		DeleteOTP(gomock.Any(), phone).
		Return(nil)

	uc := NewProviderUC(authConfig("production"), mockRepo, mocks.NewMockSMSGW(ctrl))

	summary, err := uc.VerifyOTP(context.Background(), phone, code)

	assert.NoError(t, err)
	assert.Equal(t, prov.ID, summary.ID)
	assert.Equal(t, "Ace Plumbing", summary.BusinessName)
	assert.Equal(t, 100, summary.Credits)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	hash, err := bcrypt.GenerateFromPassword([]byte("482917"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(approvedProvider(phone), nil)
	mockRepo.EXPECT().
		GetOTPHash(gomock.Any(), phone).
		Return(string(hash), nil)

	uc := NewProviderUC(authConfig("production"), mockRepo, mocks.NewMockSMSGW(ctrl))

	summary, err := uc.VerifyOTP(context.Background(), phone, "000000")

	assert.Nil(t, summary)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerifyOTP_MockCodeOutsideProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(approvedProvider(phone), nil)
	mockRepo.EXPECT().
		GetOTPHash(gomock.Any(), phone).
		Return("", sql.ErrNoRows)
	mockRepo.EXPECT().
		DeleteOTP(gomock.Any(), phone).
		Return(nil)

	uc := NewProviderUC(authConfig("development"), mockRepo, mocks.NewMockSMSGW(ctrl))

	summary, err := uc.VerifyOTP(context.Background(), phone, "123456")

	assert.NoError(t, err)
	assert.NotNil(t, summary)
}

func TestVerifyOTP_MockCodeRejectedInProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "0211234567"
	mockRepo := mocks.NewMockProviderRepo(ctrl)
	mockRepo.EXPECT().
		GetProviderByPhone(gomock.Any(), phone).
		Return(approvedProvider(phone), nil)
	mockRepo.EXPECT().
		GetOTPHash(gomock.Any(), phone).
		Return("", sql.ErrNoRows)

	uc := NewProviderUC(authConfig("production"), mockRepo, mocks.NewMockSMSGW(ctrl))

	summary, err := uc.VerifyOTP(context.Background(), phone, "123456")

	assert.Nil(t, summary)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
