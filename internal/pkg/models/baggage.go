package models

import (
	"time"

	"github.com/google/uuid"
)

// Baggage is a cargo item attached to a demande. The baggage store itself is
// owned elsewhere; this backend only resolves ids against it.
type Baggage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Label     string    `json:"label" db:"label"`
	WeightKg  float64   `json:"weight_kg" db:"weight_kg"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
