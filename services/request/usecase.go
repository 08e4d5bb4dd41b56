package request

import (
	"context"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gideonbanks/needed/services/request RequestUC

// RequestUC coordinates the request lifecycle: creation, the first
// dispatch batch and every resend.
type RequestUC interface {
	// CreateRequest validates the submission, stores the draft request and
	// mints the send-authorization token the customer uses to trigger
	// dispatch.
	CreateRequest(ctx context.Context, input *models.CreateRequestInput) (*models.CreateRequestResult, error)

	// SendFirstBatch dispatches batch 1. The request must still be in
	// draft; the token must match the request.
	SendFirstBatch(ctx context.Context, requestID uuid.UUID, sendToken string) (*models.DispatchResult, error)

	// ResendBatch dispatches a further batch (2, 3, ...). batchNumber 0
	// means "next". Any non-terminal request status is eligible;
	// already-dispatched providers are excluded by the matcher's
	// uniqueness guarantee.
	ResendBatch(ctx context.Context, requestID uuid.UUID, sendToken string, batchNumber int) (*models.DispatchResult, error)

	// GetRequestStatus returns the customer-facing status summary
	GetRequestStatus(ctx context.Context, requestID uuid.UUID) (*models.RequestStatusSummary, error)
}
