package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/gideonbanks/needed/internal/pkg/constants"
	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/models"
	natspkg "github.com/gideonbanks/needed/internal/pkg/nats"
	"github.com/gideonbanks/needed/services/notify"
)

const handleTimeout = 30 * time.Second

// Handler consumes dispatch events and triggers provider alerts
type Handler struct {
	notifyUC   notify.NotifyUC
	natsClient *natspkg.Client
	sub        *nats.Subscription
}

// NewHandler creates a new notify handler
func NewHandler(notifyUC notify.NotifyUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		notifyUC:   notifyUC,
		natsClient: natsClient,
	}
}

// InitNATSConsumers subscribes to the dispatch event stream
func (h *Handler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectDispatchBatch, h.handleDispatchBatch)
	if err != nil {
		return fmt.Errorf("failed to subscribe to dispatch events: %w", err)
	}
	h.sub = sub
	return nil
}

// Close unsubscribes from the dispatch event stream
func (h *Handler) Close() {
	if h.sub != nil {
		_ = h.sub.Unsubscribe()
	}
}

func (h *Handler) handleDispatchBatch(msg *nats.Msg) {
	var event models.DispatchEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to unmarshal dispatch event",
			logger.Err(err))
		return
	}

	logger.Info("received dispatch event",
		logger.String("request_id", event.RequestID.String()),
		logger.Int("batch_number", event.BatchNumber),
		logger.Int("providers", len(event.ProviderIDs)))

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := h.notifyUC.NotifyBatch(ctx, &event); err != nil {
		logger.Error("failed to process dispatch event",
			logger.String("request_id", event.RequestID.String()),
			logger.Err(err))
	}
}
