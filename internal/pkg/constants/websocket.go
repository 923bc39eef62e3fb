package constants

// WebSocket event names
const (
	EventDemandeUpdate = "demande_update"
	EventError         = "error"
)

// WebSocket error codes
const (
	ErrorCodeUnauthorized = "unauthorized"
	ErrorCodeInternal     = "internal_error"
)
