package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/apperr"
	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/token"
	"github.com/gideonbanks/needed/services/request"
)

// SendFirstBatch dispatches batch 1 of a draft request. The matcher
// atomically verifies ownership and draft status, transitions the request
// to sent and inserts the dispatch rows; a client retry of the same call
// is safe because the second attempt fails the draft check.
func (uc *RequestUC) SendFirstBatch(ctx context.Context, requestID uuid.UUID, sendToken string) (*models.DispatchResult, error) {
	payload, err := uc.authorizeSend(requestID, sendToken)
	if err != nil {
		return nil, err
	}

	providerIDs, err := uc.matchGW.DispatchBatch(ctx, requestID, payload.CustomerID, 1, uc.cfg.Dispatch.BatchSize)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrDispatchConflict):
			return nil, apperr.Conflict("Request already sent or status changed")
		case errors.Is(err, request.ErrRequestNotFound):
			return nil, apperr.NotFound("Request not found")
		default:
			return nil, apperr.Internal("Failed to send request", err)
		}
	}

	uc.publishDispatched(requestID, 1, providerIDs)

	return &models.DispatchResult{ProviderIDs: providerIDs, BatchNumber: 1}, nil
}

// ResendBatch dispatches a further batch. The same send token authorizes
// every resend; no new token is minted. Any non-terminal status is
// eligible, and providers from earlier batches are excluded by the
// matcher's (request, provider) uniqueness guarantee, so a conflict is
// never a valid failure here - only "not found" is treated specially.
func (uc *RequestUC) ResendBatch(ctx context.Context, requestID uuid.UUID, sendToken string, batchNumber int) (*models.DispatchResult, error) {
	payload, err := uc.authorizeSend(requestID, sendToken)
	if err != nil {
		return nil, err
	}

	if batchNumber == 0 {
		batchNumber, err = uc.repo.NextBatchNumber(ctx, requestID)
		if err != nil {
			return nil, apperr.Internal("Failed to determine batch number", err)
		}
	}
	if batchNumber < 2 {
		return nil, apperr.Validation("batchNumber must be at least 2")
	}
	if max := uc.cfg.Dispatch.MaxBatches; max > 0 && batchNumber > max {
		return nil, apperr.Conflict("Resend limit reached for this request")
	}

	providerIDs, err := uc.matchGW.DispatchBatch(ctx, requestID, payload.CustomerID, batchNumber, uc.cfg.Dispatch.BatchSize)
	if err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			return nil, apperr.NotFound("Request not found")
		}
		return nil, apperr.Internal("Failed to resend request", err)
	}

	uc.publishDispatched(requestID, batchNumber, providerIDs)

	return &models.DispatchResult{ProviderIDs: providerIDs, BatchNumber: batchNumber}, nil
}

// authorizeSend decodes the send token and checks it covers requestID
func (uc *RequestUC) authorizeSend(requestID uuid.UUID, sendToken string) (*token.SendPayload, error) {
	payload, err := token.DecodeSend(sendToken, uc.cfg.Token.Secret, time.Now())
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil, apperr.Unauthorized("Token expired")
		}
		return nil, apperr.Unauthorized("Invalid token")
	}

	if payload.RequestID != requestID {
		return nil, apperr.Unauthorized("Token does not match request")
	}
	return payload, nil
}

// publishDispatched emits the dispatch event for the notifier.
// Fire-and-forget: a publish failure is logged and never rolls back the
// dispatch.
func (uc *RequestUC) publishDispatched(requestID uuid.UUID, batchNumber int, providerIDs []uuid.UUID) {
	if len(providerIDs) == 0 {
		return
	}

	event := &models.DispatchEvent{
		RequestID:   requestID,
		BatchNumber: batchNumber,
		ProviderIDs: providerIDs,
		Timestamp:   time.Now().UTC(),
	}
	if err := uc.eventGW.PublishDispatched(event); err != nil {
		logger.Error("failed to publish dispatch event",
			logger.String("request_id", requestID.String()),
			logger.Int("batch_number", batchNumber),
			logger.Err(err))
	}
}
