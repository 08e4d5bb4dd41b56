package usecase

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/utils"
)

const (
	otpLength = 6
	otpTTL    = 5 * time.Minute

	// mockOTPCode is accepted outside production so local and staging
	// logins work without an SMS gateway.
	mockOTPCode = "123456"
)

// RequestOTP sends a login code to an approved provider's phone
func (uc *ProviderUC) RequestOTP(ctx context.Context, phone string) error {
	normalized, err := utils.NormalizeNZPhone(phone)
	if err != nil {
		return apperr.Validation("Invalid phone format")
	}

	prov, err := uc.repo.GetProviderByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("No provider account found for this phone number")
		}
		return apperr.Internal("Failed to look up provider", err)
	}

	switch prov.Status {
	case models.ProviderStatusApproved:
	case models.ProviderStatusPending:
		return apperr.Forbidden("Your account is awaiting approval")
	default:
		return apperr.Forbidden("Your account is not active")
	}

	code, err := generateOTPCode()
	if err != nil {
		return apperr.Internal("Failed to generate login code", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("Failed to store login code", err)
	}
	if err := uc.repo.StoreOTPHash(ctx, normalized, string(hash), otpTTL); err != nil {
		return apperr.Internal("Failed to store login code", err)
	}

	// Without a configured gateway the code is unreachable over SMS; the
	// mock code keeps non-production logins working.
	if uc.cfg.SMS.GatewayURL == "" && !uc.cfg.App.IsProduction() {
		logger.Info("SMS gateway not configured, skipping OTP delivery",
			logger.String("phone", normalized))
		return nil
	}

	message := fmt.Sprintf("Your login code is %s. It expires in 5 minutes.", code)
	if err := uc.smsGW.SendSMS(ctx, normalized, message); err != nil {
		return apperr.Internal("Failed to send login code", err)
	}
	return nil
}

// VerifyOTP checks the code against the stored hash. The stored code is
// deleted on success so it cannot be replayed.
func (uc *ProviderUC) VerifyOTP(ctx context.Context, phone, code string) (*models.ProviderSummary, error) {
	normalized, err := utils.NormalizeNZPhone(phone)
	if err != nil {
		return nil, apperr.Validation("Invalid phone format")
	}
	if code == "" {
		return nil, apperr.Validation("Code is required")
	}

	prov, err := uc.repo.GetProviderByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("No provider account found for this phone number")
		}
		return nil, apperr.Internal("Failed to look up provider", err)
	}
	if prov.Status != models.ProviderStatusApproved {
		return nil, apperr.Forbidden("Your account is not active")
	}

	if !uc.verifyCode(ctx, normalized, code) {
		return nil, apperr.Unauthorized("Invalid or expired code")
	}

	if err := uc.repo.DeleteOTP(ctx, normalized); err != nil {
		logger.Warn("failed to delete used OTP",
			logger.String("phone", normalized),
			logger.Err(err))
	}

	return providerSummary(prov), nil
}

// GetProfile returns the provider summary including the credit balance
func (uc *ProviderUC) GetProfile(ctx context.Context, providerID uuid.UUID) (*models.ProviderSummary, error) {
	prov, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Provider not found")
		}
		return nil, apperr.Internal("Failed to load provider", err)
	}
	return providerSummary(prov), nil
}

// ListLeads returns the provider's dispatched requests, newest first
func (uc *ProviderUC) ListLeads(ctx context.Context, providerID uuid.UUID) ([]models.Lead, error) {
	leads, err := uc.repo.ListLeads(ctx, providerID)
	if err != nil {
		return nil, apperr.Internal("Failed to load leads", err)
	}
	return leads, nil
}

func (uc *ProviderUC) verifyCode(ctx context.Context, phone, code string) bool {
	hash, err := uc.repo.GetOTPHash(ctx, phone)
	if err == nil && bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
		return true
	}
	return code == mockOTPCode && !uc.cfg.App.IsProduction()
}

func providerSummary(p *models.Provider) *models.ProviderSummary {
	return &models.ProviderSummary{
		ID:           p.ID,
		Phone:        p.Phone,
		BusinessName: p.BusinessName,
		Status:       p.Status,
		Credits:      p.Credits,
	}
}

func generateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n), nil
}
