package constants

// Redis key formats
const (
	// Provider auth
	KeyProviderOTP = "provider:otp:%s" // Format: provider:otp:{phone}
)
