package provider

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gideonbanks/needed/services/provider ProviderRepo

// ProviderRepo persists providers, their contact actions and the
// short-lived OTP hashes. Not-found lookups surface sql.ErrNoRows.
type ProviderRepo interface {
	GetProviderByPhone(ctx context.Context, phone string) (*models.Provider, error)
	GetProviderByID(ctx context.Context, providerID uuid.UUID) (*models.Provider, error)

	// ListLeads joins the provider's dispatches with request, service and
	// customer rows. CustomerPhone is populated only where a charged
	// action exists for the (request, provider) pair.
	ListLeads(ctx context.Context, providerID uuid.UUID) ([]models.Lead, error)

	// GetContactLead resolves the dispatch the provider wants to charge
	// against, scoped to the provider so one provider cannot charge
	// another's dispatch.
	GetContactLead(ctx context.Context, dispatchID, providerID uuid.UUID) (*models.ContactLead, error)

	// GetChargedAction returns the existing charged action for the pair,
	// or sql.ErrNoRows when the provider has not been charged yet.
	GetChargedAction(ctx context.Context, requestID, providerID uuid.UUID) (*models.ProviderAction, error)

	// DeductCredits applies a conditional deduction: it succeeds only if
	// the balance still equals expected. Returns false on a lost race.
	DeductCredits(ctx context.Context, providerID uuid.UUID, expected, cost int) (bool, error)

	// RestoreCredits adds cost back after a failed action insert
	RestoreCredits(ctx context.Context, providerID uuid.UUID, cost int) error

	CreateAction(ctx context.Context, action *models.ProviderAction) error

	// OTP hashes, keyed by phone with a short TTL
	StoreOTPHash(ctx context.Context, phone, hash string, ttl time.Duration) error
	GetOTPHash(ctx context.Context, phone string) (string, error)
	DeleteOTP(ctx context.Context, phone string) error
}
