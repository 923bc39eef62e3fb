package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Billing   BillingConfig
	Trajets   TrajetsConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
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

// JWTConfig contains JWT validation configuration. Tokens are minted by the
// external identity service; this backend only verifies them.
type JWTConfig struct {
	Secret string
	Issuer string
}

// APIKeyConfig holds per-service keys for internal service-to-service calls
type APIKeyConfig struct {
	DemandesService string
	BillingService  string
	TrajetsService  string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// BillingConfig contains billing service specific configuration
type BillingConfig struct {
	// DefaultCommissionPercent applies when no commission setting exists yet
	DefaultCommissionPercent float64
	// ServiceURL is the base URL of the billing service, used by the
	// demandes service for synchronous settlement calls
	ServiceURL string
	// CommissionCacheTTLSeconds bounds staleness of the cached percentage
	CommissionCacheTTLSeconds int
}

// TrajetsConfig contains trajet search specific configuration
type TrajetsConfig struct {
	SearchRangeDays int // half-width of the departure date window
}

// RateLimitConfig contains rate limiter configuration
type RateLimitConfig struct {
	Requests      int
	WindowSeconds int
}
