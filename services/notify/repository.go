package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gideonbanks/needed/services/notify NotifyRepo

// NotifyRepo reads the request and provider data behind a dispatch event
type NotifyRepo interface {
	GetRequestNotification(ctx context.Context, requestID uuid.UUID) (*models.RequestNotification, error)
	GetProviderPhones(ctx context.Context, providerIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
