package provider

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gideonbanks/needed/services/provider SMSGW

// SMSGW delivers text messages through the external SMS provider
type SMSGW interface {
	SendSMS(ctx context.Context, phone, message string) error
}
