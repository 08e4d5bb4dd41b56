package request

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gideonbanks/needed/services/request MatchGW,EventGW

// Tagged matcher failures. The gateway owns the collaborator boundary and
// maps whatever the matcher raises into these; callers never inspect
// message text.
var (
	// ErrRequestNotFound: the request does not exist or does not belong
	// to the authorizing customer.
	ErrRequestNotFound = errors.New("request not found for customer")

	// ErrDispatchConflict: batch 1 only - the request is no longer in
	// draft (already sent or status changed).
	ErrDispatchConflict = errors.New("request already sent or status changed")
)

// MatchGW is the external matcher collaborator. DispatchBatch is atomic:
// it verifies ownership and status, transitions the request, and inserts
// up to limit unique dispatch rows, all-or-nothing. Provider selection
// policy is entirely the matcher's.
type MatchGW interface {
	DispatchBatch(ctx context.Context, requestID, customerID uuid.UUID, batchNumber, limit int) ([]uuid.UUID, error)
}

// EventGW publishes dispatch events for the notifier. Publishing is a
// side effect of dispatch, never a transactional participant.
type EventGW interface {
	PublishDispatched(event *models.DispatchEvent) error
}
