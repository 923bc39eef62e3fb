package constants

// Redis key formats
const (
	// Billing service
	KeyCommissionPercent = "billing:commission:percent"

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
