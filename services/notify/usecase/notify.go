package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/services/notify"
)

// NotifyUC implements the notify use case interface
type NotifyUC struct {
	cfg   *models.Config
	repo  notify.NotifyRepo
	smsGW notify.SMSGW
}

// NewNotifyUC creates a new notify use case
func NewNotifyUC(
	cfg *models.Config,
	repo notify.NotifyRepo,
	smsGW notify.SMSGW,
) *NotifyUC {
	return &NotifyUC{
		cfg:   cfg,
		repo:  repo,
		smsGW: smsGW,
	}
}

// NotifyBatch texts every provider in a dispatch batch. A failed send for
// one provider does not stop the others; the dispatch itself already
// happened and is never rolled back from here.
func (uc *NotifyUC) NotifyBatch(ctx context.Context, event *models.DispatchEvent) error {
	if len(event.ProviderIDs) == 0 {
		return nil
	}

	notification, err := uc.repo.GetRequestNotification(ctx, event.RequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Warn("dispatch event for unknown request",
				logger.String("request_id", event.RequestID.String()))
			return nil
		}
		return fmt.Errorf("failed to load request for notification: %w", err)
	}

	phones, err := uc.repo.GetProviderPhones(ctx, event.ProviderIDs)
	if err != nil {
		return fmt.Errorf("failed to load provider phones: %w", err)
	}

	message := FormatLeadAlert(notification)

	for _, providerID := range event.ProviderIDs {
		phone, ok := phones[providerID]
		if !ok {
			logger.Warn("no phone for dispatched provider",
				logger.String("provider_id", providerID.String()),
				logger.String("request_id", event.RequestID.String()))
			continue
		}
		if err := uc.smsGW.SendSMS(ctx, phone, message); err != nil {
			logger.Error("failed to send lead alert",
				logger.String("provider_id", providerID.String()),
				logger.String("request_id", event.RequestID.String()),
				logger.Err(err))
		}
	}
	return nil
}

// FormatLeadAlert builds the provider alert text. The alert names the job
// but never the customer; contact details are paid for in the app.
func FormatLeadAlert(n *models.RequestNotification) string {
	return fmt.Sprintf("New %s job in %s, needed %s. Log in to view the lead and contact the customer.",
		n.ServiceName, n.Suburb, urgencyLabel(n.TimeNeed))
}

func urgencyLabel(timeNeed string) string {
	switch timeNeed {
	case models.TimeNeedNow:
		return "right now"
	case models.TimeNeedToday:
		return "today"
	case models.TimeNeedThisWeek:
		return "this week"
	default:
		return timeNeed
	}
}
