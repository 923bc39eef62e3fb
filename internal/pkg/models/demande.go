package models

import (
	"time"

	"github.com/google/uuid"
)

// DemandeStatus represents the commercial (negotiation) status of a demande
type DemandeStatus string

const (
	DemandeStatusPending    DemandeStatus = "pending"
	DemandeStatusInProgress DemandeStatus = "in_progress"
	DemandeStatusAccepted   DemandeStatus = "accepted"
	DemandeStatusRejected   DemandeStatus = "rejected"
	// DemandeStatusCompleted is reserved; no transition currently produces it
	DemandeStatusCompleted DemandeStatus = "completed"
)

// Valid reports whether s is a recognized commercial status
func (s DemandeStatus) Valid() bool {
	switch s {
	case DemandeStatusPending, DemandeStatusInProgress, DemandeStatusAccepted,
		DemandeStatusRejected, DemandeStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether the negotiation track can no longer move
func (s DemandeStatus) Terminal() bool {
	return s == DemandeStatusAccepted || s == DemandeStatusRejected
}

// DeliveryStatus represents the physical handling progress of the cargo,
// independent of the commercial status.
type DeliveryStatus string

const (
	DeliveryStatusPaye        DeliveryStatus = "paye"
	DeliveryStatusCollecte    DeliveryStatus = "collecte"
	DeliveryStatusEnDepot     DeliveryStatus = "en_depot"
	DeliveryStatusEnLivraison DeliveryStatus = "en_livraison"
	DeliveryStatusLivre       DeliveryStatus = "livre"
)

// deliveryOrder is the fixed forward-only progression of the delivery track
var deliveryOrder = []DeliveryStatus{
	DeliveryStatusPaye,
	DeliveryStatusCollecte,
	DeliveryStatusEnDepot,
	DeliveryStatusEnLivraison,
	DeliveryStatusLivre,
}

// DeliveryStatuses returns the recognized delivery statuses in order
func DeliveryStatuses() []DeliveryStatus {
	out := make([]DeliveryStatus, len(deliveryOrder))
	copy(out, deliveryOrder)
	return out
}

// Ordinal returns the position of s in the delivery progression,
// or -1 when s is empty or unknown.
func (s DeliveryStatus) Ordinal() int {
	for i, v := range deliveryOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a recognized delivery status
func (s DeliveryStatus) Valid() bool {
	return s.Ordinal() >= 0
}

// ProposerSide identifies which party submitted a price offer
type ProposerSide string

const (
	ProposerSideUser   ProposerSide = "user"
	ProposerSideDriver ProposerSide = "driver"
)

// Demande represents a transport request, the central negotiated entity.
// Money amounts are integer minor units (centimes).
type Demande struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	DriverID      *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	TrajetID      *uuid.UUID `json:"trajet_id,omitempty" db:"trajet_id"`
	PickupPoint   string     `json:"pickup_point" db:"pickup_point"`
	DropoffPoint  string     `json:"dropoff_point" db:"dropoff_point"`
	PortDepart    string     `json:"port_depart,omitempty" db:"port_depart"`
	PortArrivee   string     `json:"port_arrivee,omitempty" db:"port_arrivee"`
	TotalWeightKg float64    `json:"total_weight_kg" db:"total_weight_kg"`

	ProposedPrice  int64         `json:"proposed_price" db:"proposed_price"`
	ProposerDriver bool          `json:"proposer_driver" db:"proposer_driver"`
	ProposerUser   bool          `json:"proposer_user" db:"proposer_user"`
	Status         DemandeStatus `json:"status" db:"status"`

	DeliveryStatus  DeliveryStatus  `json:"delivery_status,omitempty" db:"delivery_status"`
	DeliveryHistory []DeliveryEvent `json:"delivery_history,omitempty"`

	// CommissionPercent is the percentage in effect at acceptance time,
	// snapshotted for audit. It is never recomputed afterwards.
	CommissionPercent *float64 `json:"commission_percent,omitempty" db:"commission_percent"`

	Rating  *float64 `json:"rating,omitempty" db:"rating"`
	Comment string   `json:"comment,omitempty" db:"comment"`

	BaggageIDs []uuid.UUID `json:"baggage_ids"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DeliveryEvent is an append-only record of a delivery status change
type DeliveryEvent struct {
	DemandeID uuid.UUID      `json:"demande_id" db:"demande_id"`
	Status    DeliveryStatus `json:"status" db:"delivery_status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// CreateDemandeRequest is the payload for creating a demande
type CreateDemandeRequest struct {
	UserID        uuid.UUID   `json:"user_id"`
	DriverID      *uuid.UUID  `json:"driver_id,omitempty"`
	TrajetID      *uuid.UUID  `json:"trajet_id,omitempty"`
	PickupPoint   string      `json:"pickup_point"`
	DropoffPoint  string      `json:"dropoff_point"`
	PortDepart    string      `json:"port_depart,omitempty"`
	PortArrivee   string      `json:"port_arrivee,omitempty"`
	TotalWeightKg float64     `json:"total_weight_kg"`
	ProposedPrice int64       `json:"proposed_price"`
	BaggageIDs    []uuid.UUID `json:"baggage_ids"`
}

// DemandePatch carries a partial update of a demande's commercial fields.
// Nil pointers leave the stored value untouched. A nil BaggageIDs slice
// leaves the cargo set untouched; a non-nil one replaces it and must be a
// non-empty resolved set.
type DemandePatch struct {
	DriverID      *uuid.UUID     `json:"driver_id,omitempty"`
	TrajetID      *uuid.UUID     `json:"trajet_id,omitempty"`
	PickupPoint   *string        `json:"pickup_point,omitempty"`
	DropoffPoint  *string        `json:"dropoff_point,omitempty"`
	PortDepart    *string        `json:"port_depart,omitempty"`
	PortArrivee   *string        `json:"port_arrivee,omitempty"`
	TotalWeightKg *float64       `json:"total_weight_kg,omitempty"`
	ProposedPrice *int64         `json:"proposed_price,omitempty"`
	Status        *DemandeStatus `json:"status,omitempty"`
	BaggageIDs    []uuid.UUID    `json:"baggage_ids,omitempty"`
}

// ProposePriceRequest is the payload for a price offer
type ProposePriceRequest struct {
	Price    int64        `json:"price"`
	Proposer ProposerSide `json:"proposer"`
}

// AdvanceDeliveryRequest is the payload for a delivery status transition
type AdvanceDeliveryRequest struct {
	Status DeliveryStatus `json:"status"`
}

// ReviewRequest is the payload for attaching post-completion feedback
type ReviewRequest struct {
	Rating  *float64 `json:"rating"`
	Comment string   `json:"comment,omitempty"`
}

// DriverRating is the aggregate of ratings across a driver's demandes
type DriverRating struct {
	DriverID      uuid.UUID `json:"driver_id"`
	AverageRating float64   `json:"average_rating"` // rounded to one decimal
	TotalRatings  int       `json:"total_ratings"`
}
