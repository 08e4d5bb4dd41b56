package models

import (
	"time"

	"github.com/google/uuid"
)

// Request status values. A request is created in draft, moves to sent
// exactly once, and terminates at completed, lost, expired or cancelled.
const (
	RequestStatusDraft     = "draft"
	RequestStatusSent      = "sent"
	RequestStatusContacted = "contacted"
	RequestStatusWon       = "won"
	RequestStatusCompleted = "completed"
	RequestStatusLost      = "lost"
	RequestStatusExpired   = "expired"
	RequestStatusCancelled = "cancelled"
)

// TimeNeed values describe how urgently the customer needs the job done.
const (
	TimeNeedNow      = "now"
	TimeNeedToday    = "today"
	TimeNeedThisWeek = "this-week"
)

// ValidTimeNeed reports whether v is a recognized urgency value.
func ValidTimeNeed(v string) bool {
	return v == TimeNeedNow || v == TimeNeedToday || v == TimeNeedThisWeek
}

// TerminalRequestStatus reports whether status admits no further dispatching.
func TerminalRequestStatus(status string) bool {
	switch status {
	case RequestStatusCompleted, RequestStatusLost, RequestStatusExpired, RequestStatusCancelled:
		return true
	}
	return false
}

// Request represents a customer service request
type Request struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	ServiceID  uuid.UUID `json:"service_id" db:"service_id"`
	TimeNeed   string    `json:"time_need" db:"time_need"`
	Suburb     string    `json:"suburb" db:"suburb_text"`
	Latitude   float64   `json:"lat" db:"lat"`
	Longitude  float64   `json:"lng" db:"lng"`
	Geohash    string    `json:"geohash" db:"geohash"`
	Details    string    `json:"details" db:"details"`
	PhotoURL   *string   `json:"photo_url,omitempty" db:"photo_url"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Dispatch records that a provider received a request in a given batch.
// Rows are append-only and unique per (request_id, provider_id).
type Dispatch struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RequestID    uuid.UUID `json:"request_id" db:"request_id"`
	ProviderID   uuid.UUID `json:"provider_id" db:"provider_id"`
	BatchNumber  int       `json:"batch_number" db:"batch_number"`
	DispatchedAt time.Time `json:"dispatched_at" db:"dispatched_at"`
}

// Service represents an offered service category entry
type Service struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Slug     string    `json:"slug" db:"slug"`
	IsActive bool      `json:"is_active" db:"is_active"`
}

// Customer represents an anonymous customer identified by phone
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateRequestInput carries a validated request-creation submission
type CreateRequestInput struct {
	ServiceSlug string  `json:"serviceSlug"`
	TimeNeed    string  `json:"timeNeed"`
	Suburb      string  `json:"suburb"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	Details     string  `json:"details"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	Phone       string  `json:"phone"`
}

// CreateRequestResult is returned to the customer after creation. The send
// token is the customer's only proof of ownership; there is no session.
type CreateRequestResult struct {
	RequestID uuid.UUID `json:"requestId"`
	SendToken string    `json:"sendToken"`
}

// DispatchResult summarizes one successful batch dispatch
type DispatchResult struct {
	ProviderIDs []uuid.UUID `json:"providerIds"`
	BatchNumber int         `json:"batchNumber"`
}

// RequestStatusSummary is the customer-facing status poll payload
type RequestStatusSummary struct {
	RequestID   uuid.UUID `json:"requestId"`
	Status      string    `json:"status"`
	ServiceName string    `json:"serviceName"`
	TimeNeed    string    `json:"timeNeed"`
	Suburb      string    `json:"suburb"`
	Batches     int       `json:"batches"`
	Dispatched  int       `json:"dispatched"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RequestNotification carries the request fields the notifier needs to
// compose provider alerts. Customer contact details are deliberately
// absent; they are only revealed through a charged contact action.
type RequestNotification struct {
	RequestID   uuid.UUID `db:"request_id"`
	ServiceName string    `db:"service_name"`
	Suburb      string    `db:"suburb_text"`
	TimeNeed    string    `db:"time_need"`
}

// DispatchEvent is published on the message bus after a successful batch
// dispatch so the notifier can fan out SMS alerts. Delivery is
// fire-and-forget; it never participates in the dispatch transaction.
type DispatchEvent struct {
	RequestID   uuid.UUID   `json:"request_id"`
	BatchNumber int         `json:"batch_number"`
	ProviderIDs []uuid.UUID `json:"provider_ids"`
	Timestamp   time.Time   `json:"timestamp"`
}
