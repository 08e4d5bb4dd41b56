package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	httppkg "github.com/gideonbanks/needed/internal/pkg/http"
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/internal/pkg/retry"
)

// SMSGW sends text messages through the external SMS provider's HTTP API.
// With a retrier, transient gateway failures are retried with backoff;
// without one, each message gets a single attempt.
type SMSGW struct {
	client   *httppkg.APIKeyClient
	senderID string
	retrier  *retry.Retrier
}

// NewSMSGW creates a single-attempt SMS gateway instance
func NewSMSGW(cfg models.SMSConfig) *SMSGW {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = httppkg.DefaultTimeout
	}
	return &SMSGW{
		client:   httppkg.NewAPIKeyClient(cfg.GatewayURL, cfg.APIKey, timeout),
		senderID: cfg.SenderID,
	}
}

// NewSMSGWWithRetry creates an SMS gateway that retries transient failures
func NewSMSGWWithRetry(cfg models.SMSConfig, retrier *retry.Retrier) *SMSGW {
	gw := NewSMSGW(cfg)
	gw.retrier = retrier
	return gw
}

type smsPayload struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// SendSMS posts one message to the gateway
func (g *SMSGW) SendSMS(ctx context.Context, phone, message string) error {
	if g.retrier != nil {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.send(ctx, phone, message)
		})
	}
	return g.send(ctx, phone, message)
}

func (g *SMSGW) send(ctx context.Context, phone, message string) error {
	resp, err := g.client.Post(ctx, "/messages", smsPayload{
		To:      phone,
		From:    g.senderID,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
