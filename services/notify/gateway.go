package notify

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gideonbanks/needed/services/notify SMSGW

// SMSGW delivers the provider alert texts
type SMSGW interface {
	SendSMS(ctx context.Context, phone, message string) error
}
