package notify

import (
	"context"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gideonbanks/needed/services/notify NotifyUC

// NotifyUC fans dispatch events out to provider phones. Delivery is best
// effort: failures are logged, never retried, and never reported back to
// the dispatcher.
type NotifyUC interface {
	NotifyBatch(ctx context.Context, event *models.DispatchEvent) error
}
