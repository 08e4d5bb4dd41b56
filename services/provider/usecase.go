package provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gideonbanks/needed/services/provider ProviderUC

// ProviderUC covers provider login, the lead inbox and the credit ledger.
type ProviderUC interface {
	// RequestOTP sends a login code to an approved provider's phone.
	// Pending and suspended providers are refused.
	RequestOTP(ctx context.Context, phone string) error

	// VerifyOTP checks the code and returns the provider on success. The
	// stored code is single use.
	VerifyOTP(ctx context.Context, phone, code string) (*models.ProviderSummary, error)

	// GetProfile returns the provider summary including the credit balance
	GetProfile(ctx context.Context, providerID uuid.UUID) (*models.ProviderSummary, error)

	// ListLeads returns the provider's dispatched requests, newest first.
	// Customer contact details appear only on leads already charged for.
	ListLeads(ctx context.Context, providerID uuid.UUID) ([]models.Lead, error)

	// ChargeForContact settles a contact action against the provider's
	// credit balance and reveals the customer phone. Charging the same
	// lead twice returns the original result without a second deduction.
	ChargeForContact(ctx context.Context, providerID uuid.UUID, action *models.ContactActionRequest) (*models.ChargeResult, error)
}
