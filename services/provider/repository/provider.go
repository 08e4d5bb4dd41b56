package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

// GetProviderByPhone looks up a provider account by normalized phone.
// Unknown phones surface sql.ErrNoRows.
func (r *ProviderRepo) GetProviderByPhone(ctx context.Context, phone string) (*models.Provider, error) {
	var prov models.Provider
	query := `
		SELECT id, phone, business_name, status, credits, created_at
		FROM providers
		WHERE phone = $1
	`
	if err := r.db.GetContext(ctx, &prov, query, phone); err != nil {
		return nil, err
	}
	return &prov, nil
}

// GetProviderByID loads a provider account by ID
func (r *ProviderRepo) GetProviderByID(ctx context.Context, providerID uuid.UUID) (*models.Provider, error) {
	var prov models.Provider
	query := `
		SELECT id, phone, business_name, status, credits, created_at
		FROM providers
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &prov, query, providerID); err != nil {
		return nil, err
	}
	return &prov, nil
}

// ListLeads returns the provider's dispatches joined with request, service
// and customer rows, newest first. The customer phone is revealed only
// where a charged action exists for the (request, provider) pair.
func (r *ProviderRepo) ListLeads(ctx context.Context, providerID uuid.UUID) ([]models.Lead, error) {
	leads := []models.Lead{}
	query := `
		SELECT d.id AS dispatch_id, d.request_id, s.name AS service_name,
			s.slug AS service_slug, r.suburb_text, r.details, r.time_need,
			r.status, d.batch_number, d.dispatched_at,
			CASE WHEN a.id IS NOT NULL THEN c.phone ELSE '' END AS customer_phone,
			a.id IS NOT NULL AS contacted
		FROM request_dispatches d
		JOIN requests r ON r.id = d.request_id
		JOIN services s ON s.id = r.service_id
		JOIN customers c ON c.id = r.customer_id
		LEFT JOIN provider_actions a
			ON a.request_id = d.request_id
			AND a.provider_id = d.provider_id
			AND a.charge_status = 'charged'
		WHERE d.provider_id = $1
		ORDER BY d.dispatched_at DESC
	`
	if err := r.db.SelectContext(ctx, &leads, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// GetContactLead resolves the dispatch the provider wants to charge
// against. The provider scope means a dispatch ID from another provider's
// inbox surfaces sql.ErrNoRows.
func (r *ProviderRepo) GetContactLead(ctx context.Context, dispatchID, providerID uuid.UUID) (*models.ContactLead, error) {
	var lead models.ContactLead
	query := `
		SELECT d.id AS dispatch_id, d.request_id, d.provider_id,
			s.slug AS service_slug, r.time_need, c.phone AS customer_phone
		FROM request_dispatches d
		JOIN requests r ON r.id = d.request_id
		JOIN services s ON s.id = r.service_id
		JOIN customers c ON c.id = r.customer_id
		WHERE d.id = $1 AND d.provider_id = $2
	`
	if err := r.db.GetContext(ctx, &lead, query, dispatchID, providerID); err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetChargedAction returns the charged action for a (request, provider)
// pair, or sql.ErrNoRows when the provider has not paid for contact yet.
func (r *ProviderRepo) GetChargedAction(ctx context.Context, requestID, providerID uuid.UUID) (*models.ProviderAction, error) {
	var action models.ProviderAction
	query := `
		SELECT id, request_id, provider_id, dispatch_id, action_type,
			credit_cost, charge_status, created_at
		FROM provider_actions
		WHERE request_id = $1 AND provider_id = $2 AND charge_status = 'charged'
	`
	if err := r.db.GetContext(ctx, &action, query, requestID, providerID); err != nil {
		return nil, err
	}
	return &action, nil
}

// DeductCredits applies a conditional deduction. The balance guard makes
// concurrent deductions serialize: a writer that read a stale balance
// matches zero rows and reports false.
func (r *ProviderRepo) DeductCredits(ctx context.Context, providerID uuid.UUID, expected, cost int) (bool, error) {
	query := `
		UPDATE providers
		SET credits = credits - $1
		WHERE id = $2 AND credits = $3
	`
	result, err := r.db.ExecContext(ctx, query, cost, providerID, expected)
	if err != nil {
		return false, fmt.Errorf("failed to deduct credits: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read deduction result: %w", err)
	}
	return rows == 1, nil
}

// RestoreCredits adds cost back after a failed action insert
func (r *ProviderRepo) RestoreCredits(ctx context.Context, providerID uuid.UUID, cost int) error {
	query := `
		UPDATE providers
		SET credits = credits + $1
		WHERE id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, cost, providerID); err != nil {
		return fmt.Errorf("failed to restore credits: %w", err)
	}
	return nil
}

// CreateAction inserts a contact action row. The partial unique index on
// charged (request_id, provider_id) pairs rejects a double charge that
// slipped past the idempotency read.
func (r *ProviderRepo) CreateAction(ctx context.Context, action *models.ProviderAction) error {
	query := `
		INSERT INTO provider_actions (
			id, request_id, provider_id, dispatch_id, action_type,
			credit_cost, charge_status, created_at
		) VALUES (:id, :request_id, :provider_id, :dispatch_id, :action_type,
			:credit_cost, :charge_status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, action); err != nil {
		return fmt.Errorf("failed to insert provider action: %w", err)
	}
	return nil
}
