package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
)

// ChargeForContact settles a contact action against the provider's credit
// balance. The sequence is idempotency check, pricing, balance check,
// conditional deduction, action insert, with a compensating restore if the
// insert fails after the deduction. Charging a lead the provider already
// paid for returns the original result and mutates nothing.
func (uc *ProviderUC) ChargeForContact(ctx context.Context, providerID uuid.UUID, action *models.ContactActionRequest) (*models.ChargeResult, error) {
	if action.ActionType != models.ActionTypeCall && action.ActionType != models.ActionTypeText {
		return nil, apperr.Validation("actionType must be call or text")
	}
	if action.DispatchID == uuid.Nil {
		return nil, apperr.Validation("dispatchId is required")
	}

	lead, err := uc.repo.GetContactLead(ctx, action.DispatchID, providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Lead not found")
		}
		return nil, apperr.Internal("Failed to load lead", err)
	}

	existing, err := uc.repo.GetChargedAction(ctx, lead.RequestID, providerID)
	if err == nil {
		prov, err := uc.repo.GetProviderByID(ctx, providerID)
		if err != nil {
			return nil, apperr.Internal("Failed to load provider", err)
		}
		return &models.ChargeResult{
			CustomerPhone:    lead.CustomerPhone,
			ActionType:       existing.ActionType,
			CreditCost:       existing.CreditCost,
			NewBalance:       prov.Credits,
			AlreadyContacted: true,
		}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internal("Failed to check contact history", err)
	}

	cost := ContactCost(lead.ServiceSlug, lead.TimeNeed)

	prov, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, apperr.Internal("Failed to load provider", err)
	}
	if prov.Credits < cost {
		return nil, apperr.InsufficientCredits(cost, prov.Credits)
	}

	deducted, err := uc.repo.DeductCredits(ctx, providerID, prov.Credits, cost)
	if err != nil {
		return nil, apperr.Internal("Failed to deduct credits", err)
	}
	if !deducted {
		// Balance moved between read and deduction; the client retries.
		return nil, apperr.Conflict("Balance changed, please retry")
	}

	newAction := &models.ProviderAction{
		ID:           uuid.New(),
		RequestID:    lead.RequestID,
		ProviderID:   providerID,
		DispatchID:   lead.DispatchID,
		ActionType:   action.ActionType,
		CreditCost:   cost,
		ChargeStatus: models.ChargeStatusCharged,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.CreateAction(ctx, newAction); err != nil {
		if restoreErr := uc.repo.RestoreCredits(ctx, providerID, cost); restoreErr != nil {
			logger.Error("failed to restore credits after action insert failure",
				logger.String("provider_id", providerID.String()),
				logger.Int("cost", cost),
				logger.Err(restoreErr))
		}
		return nil, apperr.Internal("Failed to record contact action", err)
	}

	return &models.ChargeResult{
		CustomerPhone: lead.CustomerPhone,
		ActionType:    action.ActionType,
		CreditCost:    cost,
		NewBalance:    prov.Credits - cost,
	}, nil
}
