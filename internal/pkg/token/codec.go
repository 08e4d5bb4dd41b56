// Package token implements the stateless signed authorization tokens used
// by anonymous customers (send authorization) and provider sessions.
//
// Wire format: base64url(JSON payload) + "." + base64url(HMAC-SHA256 over
// the encoded payload). The two payload schemas are deliberately not
// interchangeable; decoding one with the other's schema fails closed.
package token

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current payload schema version
const SchemaVersion = 1

// Decode errors, ordered by validation stage. Validation short-circuits:
// structure, then signature, then payload shape, then version, then expiry.
var (
	ErrMalformedToken     = errors.New("malformed token")
	ErrInvalidSignature   = errors.New("invalid token signature")
	ErrMalformedPayload   = errors.New("malformed token payload")
	ErrUnsupportedVersion = errors.New("unsupported token version")
	ErrExpired            = errors.New("token expired")
)

// SendPayload proves the bearer created request RequestID. One token
// authorizes the initial send and every resend; expiry is Unix
// milliseconds.
type SendPayload struct {
	Version    int       `json:"v"`
	RequestID  uuid.UUID `json:"rid"`
	CustomerID uuid.UUID `json:"cid"`
	ExpiresAt  int64     `json:"exp"`
}

// SessionPayload carries a provider's session identity
type SessionPayload struct {
	Version    int       `json:"v"`
	ProviderID uuid.UUID `json:"pid"`
	ExpiresAt  int64     `json:"exp"`
}

// NewSendPayload builds a send-authorization payload expiring after ttl
func NewSendPayload(requestID, customerID uuid.UUID, ttl time.Duration, now time.Time) SendPayload {
	return SendPayload{
		Version:    SchemaVersion,
		RequestID:  requestID,
		CustomerID: customerID,
		ExpiresAt:  now.Add(ttl).UnixMilli(),
	}
}

// NewSessionPayload builds a provider session payload expiring after ttl
func NewSessionPayload(providerID uuid.UUID, ttl time.Duration, now time.Time) SessionPayload {
	return SessionPayload{
		Version:    SchemaVersion,
		ProviderID: providerID,
		ExpiresAt:  now.Add(ttl).UnixMilli(),
	}
}

// EncodeSend serializes and signs a send-authorization payload
func EncodeSend(payload SendPayload, secret string) (string, error) {
	return encode(payload, secret)
}

// EncodeSession serializes and signs a provider session payload
func EncodeSession(payload SessionPayload, secret string) (string, error) {
	return encode(payload, secret)
}

// DecodeSend validates and decodes a send-authorization token
func DecodeSend(token, secret string, now time.Time) (*SendPayload, error) {
	body, err := verify(token, secret)
	if err != nil {
		return nil, err
	}

	var payload SendPayload
	if err := parsePayload(body, &payload); err != nil {
		return nil, err
	}
	if payload.RequestID == uuid.Nil || payload.CustomerID == uuid.Nil || payload.ExpiresAt == 0 {
		return nil, ErrMalformedPayload
	}

	return &payload, checkClaims(payload.Version, payload.ExpiresAt, now)
}

// DecodeSession validates and decodes a provider session token
func DecodeSession(token, secret string, now time.Time) (*SessionPayload, error) {
	body, err := verify(token, secret)
	if err != nil {
		return nil, err
	}

	var payload SessionPayload
	if err := parsePayload(body, &payload); err != nil {
		return nil, err
	}
	if payload.ProviderID == uuid.Nil || payload.ExpiresAt == 0 {
		return nil, ErrMalformedPayload
	}

	return &payload, checkClaims(payload.Version, payload.ExpiresAt, now)
}

func encode(payload interface{}, secret string) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	body := base64.RawURLEncoding.EncodeToString(raw)
	return body + "." + sign(body, secret), nil
}

// verify checks the structural shape and signature, returning the decoded
// payload bytes. Signature comparison is constant time.
func verify(token, secret string) ([]byte, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, ErrMalformedToken
	}
	body, signature := parts[0], parts[1]

	expected := sign(body, secret)
	if len(expected) != len(signature) || !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrInvalidSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrMalformedPayload
	}
	return raw, nil
}

// parsePayload decodes JSON strictly so a payload from the other schema
// is rejected instead of silently zero-filled.
func parsePayload(raw []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return ErrMalformedPayload
	}
	return nil
}

func checkClaims(version int, expiresAt int64, now time.Time) error {
	if version != SchemaVersion {
		return ErrUnsupportedVersion
	}
	if expiresAt <= now.UnixMilli() {
		return ErrExpired
	}
	return nil
}

func sign(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
