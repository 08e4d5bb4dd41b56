package models

import (
	"time"

	"github.com/google/uuid"
)

// Provider status values
const (
	ProviderStatusPending   = "pending"
	ProviderStatusApproved  = "approved"
	ProviderStatusSuspended = "suspended"
)

// Contact action types, the billing triggers
const (
	ActionTypeCall = "call"
	ActionTypeText = "text"
)

// Charge status values for provider actions. A refund is a new row, never
// a mutation of the charged row.
const (
	ChargeStatusCharged  = "charged"
	ChargeStatusRefunded = "refunded"
)

// Provider represents a service provider account. Credits never go
// negative; every deduction is conditional on the balance it was computed
// from.
type Provider struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Phone        string    `json:"phone" db:"phone"`
	BusinessName string    `json:"business_name" db:"business_name"`
	Status       string    `json:"status" db:"status"`
	Credits      int       `json:"credits" db:"credits"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ProviderAction is the append-only contact log. At most one row per
// (request_id, provider_id) carries charge_status = charged.
type ProviderAction struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RequestID    uuid.UUID `json:"request_id" db:"request_id"`
	ProviderID   uuid.UUID `json:"provider_id" db:"provider_id"`
	DispatchID   uuid.UUID `json:"dispatch_id" db:"dispatch_id"`
	ActionType   string    `json:"action_type" db:"action_type"`
	CreditCost   int       `json:"credit_cost" db:"credit_cost"`
	ChargeStatus string    `json:"charge_status" db:"charge_status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Lead is a dispatched request as the provider sees it. CustomerPhone is
// only populated once the provider has been charged for contact.
type Lead struct {
	DispatchID    uuid.UUID `json:"dispatchId" db:"dispatch_id"`
	RequestID     uuid.UUID `json:"requestId" db:"request_id"`
	ServiceName   string    `json:"serviceName" db:"service_name"`
	ServiceSlug   string    `json:"serviceSlug" db:"service_slug"`
	Suburb        string    `json:"suburb" db:"suburb_text"`
	Details       string    `json:"details" db:"details"`
	TimeNeed      string    `json:"timeNeed" db:"time_need"`
	Status        string    `json:"status" db:"status"`
	BatchNumber   int       `json:"batchNumber" db:"batch_number"`
	DispatchedAt  time.Time `json:"dispatchedAt" db:"dispatched_at"`
	CustomerPhone string    `json:"customerPhone,omitempty" db:"customer_phone"`
	Contacted     bool      `json:"contacted" db:"contacted"`
}

// ContactLead is the dispatch/request join the ledger charges against
type ContactLead struct {
	DispatchID    uuid.UUID `db:"dispatch_id"`
	RequestID     uuid.UUID `db:"request_id"`
	ProviderID    uuid.UUID `db:"provider_id"`
	ServiceSlug   string    `db:"service_slug"`
	TimeNeed      string    `db:"time_need"`
	CustomerPhone string    `db:"customer_phone"`
}

// ChargeResult is returned after a contact action settles. The caller uses
// it to reveal the customer contact details that were otherwise withheld.
type ChargeResult struct {
	CustomerPhone    string `json:"customerPhone"`
	ActionType       string `json:"actionType"`
	CreditCost       int    `json:"creditCost"`
	NewBalance       int    `json:"newBalance"`
	AlreadyContacted bool   `json:"alreadyContacted,omitempty"`
}

// ContactActionRequest is the provider contact-action submission
type ContactActionRequest struct {
	DispatchID uuid.UUID `json:"dispatchId"`
	ActionType string    `json:"actionType"`
}

// OTPRequest asks for a login code to be sent to a provider phone
type OTPRequest struct {
	Phone string `json:"phone"`
}

// OTPVerifyRequest verifies a login code
type OTPVerifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// ProviderSummary is returned after login and on the profile endpoint
type ProviderSummary struct {
	ID           uuid.UUID `json:"id"`
	Phone        string    `json:"phone"`
	BusinessName string    `json:"businessName"`
	Status       string    `json:"status"`
	Credits      int       `json:"credits"`
}
