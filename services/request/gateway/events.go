package gateway

import (
	"github.com/gideonbanks/needed/internal/pkg/constants"
	"github.com/gideonbanks/needed/internal/pkg/models"
	natspkg "github.com/gideonbanks/needed/internal/pkg/nats"
)

// EventGW publishes dispatch events to NATS
type EventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates a new event gateway instance
func NewEventGW(client *natspkg.Client) *EventGW {
	return &EventGW{natsClient: client}
}

// PublishDispatched publishes a dispatch event for the notifier
func (g *EventGW) PublishDispatched(event *models.DispatchEvent) error {
	return g.natsClient.Publish(constants.SubjectDispatchBatch, event)
}
