package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/token"
	"github.com/gideonbanks/needed/internal/utils"
)

// CreateRequest validates the submission, resolves the service and
// customer, stores the draft request and mints the send token. The send
// token is the customer's only proof of ownership; its lifetime must
// outlive the "resend after 10 minutes" window.
func (uc *RequestUC) CreateRequest(ctx context.Context, input *models.CreateRequestInput) (*models.CreateRequestResult, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	phone, err := utils.NormalizeNZPhone(input.Phone)
	if err != nil {
		return nil, apperr.Validation("Invalid phone format")
	}

	service, err := uc.repo.GetActiveServiceBySlug(ctx, input.ServiceSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Service not found")
		}
		return nil, apperr.Internal("Failed to resolve service", err)
	}

	customer, err := uc.repo.UpsertCustomerByPhone(ctx, phone)
	if err != nil {
		return nil, apperr.Internal("Failed to resolve customer", err)
	}

	req := &models.Request{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		ServiceID:  service.ID,
		TimeNeed:   input.TimeNeed,
		Suburb:     input.Suburb,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Geohash:    utils.EncodeLocation(input.Latitude, input.Longitude),
		Details:    input.Details,
		PhotoURL:   input.PhotoURL,
		Status:     models.RequestStatusDraft,
		CreatedAt:  time.Now(),
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, apperr.Internal("Failed to create request", err)
	}

	sendTTL := time.Duration(uc.cfg.Token.SendTTLMinutes) * time.Minute
	payload := token.NewSendPayload(req.ID, customer.ID, sendTTL, time.Now())
	sendToken, err := token.EncodeSend(payload, uc.cfg.Token.Secret)
	if err != nil {
		return nil, apperr.Internal("Failed to mint send token", err)
	}

	return &models.CreateRequestResult{
		RequestID: req.ID,
		SendToken: sendToken,
	}, nil
}

// GetRequestStatus returns the status summary for the customer poll
func (uc *RequestUC) GetRequestStatus(ctx context.Context, requestID uuid.UUID) (*models.RequestStatusSummary, error) {
	summary, err := uc.repo.GetStatusSummary(ctx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Request not found")
		}
		return nil, apperr.Internal("Failed to load request status", err)
	}
	return summary, nil
}

func validateCreateInput(input *models.CreateRequestInput) error {
	switch {
	case input.ServiceSlug == "":
		return apperr.Validation("Service is required")
	case !models.ValidTimeNeed(input.TimeNeed):
		return apperr.Validation(fmt.Sprintf("timeNeed must be one of %q, %q, %q",
			models.TimeNeedNow, models.TimeNeedToday, models.TimeNeedThisWeek))
	case input.Suburb == "":
		return apperr.Validation("Suburb is required")
	case input.Details == "":
		return apperr.Validation("Details are required")
	case !utils.ValidCoordinates(input.Latitude, input.Longitude):
		return apperr.Validation("Invalid location coordinates")
	case input.Phone == "":
		return apperr.Validation("Phone is required")
	}
	return nil
}
