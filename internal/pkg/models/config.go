package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Token     TokenConfig
	RateLimit RateLimitConfig
	Dispatch  DispatchConfig
	SMS       SMSConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// IsProduction reports whether the app runs in the production environment.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// TokenConfig contains signed-token configuration.
// SendTTLMinutes must outlive the customer-visible "resend after 10
// minutes" window since the same token authorizes every resend.
type TokenConfig struct {
	Secret            string
	SendTTLMinutes    int // send-authorization token lifetime
	SessionTTLMinutes int // provider session token lifetime
}

// RateLimitConfig contains request-creation admission control configuration
type RateLimitConfig struct {
	WindowSeconds int
	Max           int
}

// DispatchConfig contains dispatch batch configuration
type DispatchConfig struct {
	BatchSize  int // providers per batch
	MaxBatches int // 0 means unlimited resends
}

// SMSConfig contains SMS gateway configuration
type SMSConfig struct {
	GatewayURL     string
	APIKey         string
	SenderID       string
	TimeoutSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // "file" or "stdout"
}
