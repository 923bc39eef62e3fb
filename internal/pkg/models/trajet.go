package models

import (
	"time"

	"github.com/google/uuid"
)

// TransportMode is the vehicle class a trajet is operated with
type TransportMode string

const (
	TransportModeRoad TransportMode = "road"
	TransportModeAir  TransportMode = "air"
	TransportModeSea  TransportMode = "sea"
)

// Valid reports whether m is a recognized transport mode
func (m TransportMode) Valid() bool {
	switch m {
	case TransportModeRoad, TransportModeAir, TransportModeSea:
		return true
	}
	return false
}

// Trajet is a scheduled driver-operated transport run between two points
type Trajet struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	DriverID      uuid.UUID     `json:"driver_id" db:"driver_id"`
	Origin        string        `json:"origin" db:"origin"`
	Destination   string        `json:"destination" db:"destination"`
	TransportMode TransportMode `json:"transport_mode" db:"transport_mode"`
	DepartureDate time.Time     `json:"departure_date" db:"departure_date"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// CreateTrajetRequest is the payload for scheduling a trajet
type CreateTrajetRequest struct {
	DriverID      uuid.UUID     `json:"driver_id"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	TransportMode TransportMode `json:"transport_mode"`
	DepartureDate string        `json:"departure_date"` // YYYY-MM-DD
}

// TrajetSearchParams describes a windowed route search
type TrajetSearchParams struct {
	From      string
	To        string
	Mode      TransportMode
	Date      string // YYYY-MM-DD, interpreted at UTC midnight
	RangeDays int    // 0 means the configured default
}
