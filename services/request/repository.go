package request

import (
	"context"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gideonbanks/needed/services/request RequestRepo

// RequestRepo persists customer requests. Not-found lookups surface
// sql.ErrNoRows for the usecase to classify.
type RequestRepo interface {
	GetActiveServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
	UpsertCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	CreateRequest(ctx context.Context, req *models.Request) error
	NextBatchNumber(ctx context.Context, requestID uuid.UUID) (int, error)
	GetStatusSummary(ctx context.Context, requestID uuid.UUID) (*models.RequestStatusSummary, error)
}
