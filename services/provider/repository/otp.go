package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gideonbanks/needed/internal/pkg/constants"
)

// StoreOTPHash stores a bcrypt OTP hash with a short TTL. A new code for
// the same phone overwrites the previous one.
func (r *ProviderRepo) StoreOTPHash(ctx context.Context, phone, hash string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyProviderOTP, phone)
	return r.redis.Set(ctx, key, hash, ttl)
}

// GetOTPHash returns the stored OTP hash for a phone. Expired and unknown
// keys surface the client's not-found error.
func (r *ProviderRepo) GetOTPHash(ctx context.Context, phone string) (string, error) {
	key := fmt.Sprintf(constants.KeyProviderOTP, phone)
	return r.redis.Get(ctx, key)
}

// DeleteOTP removes a used code so it cannot be replayed
func (r *ProviderRepo) DeleteOTP(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyProviderOTP, phone)
	return r.redis.Delete(ctx, key)
}
