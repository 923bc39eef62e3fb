package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver carries the billing-relevant view of a driver. Solde is the running
// balance in minor units; it may go negative, representing commission owed
// to the platform until the next payout.
type Driver struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Solde     int64     `json:"solde" db:"solde"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PaymentKind distinguishes ledger entry types
type PaymentKind string

const (
	PaymentKindRecharge   PaymentKind = "recharge"
	PaymentKindCommission PaymentKind = "commission"
)

// PaymentHistoryEntry is an immutable, append-only ledger record.
// Amount is signed: positive for recharges, negative for commission charges.
type PaymentHistoryEntry struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	DriverID  uuid.UUID   `json:"driver_id" db:"driver_id"`
	Amount    int64       `json:"amount" db:"amount"`
	Kind      PaymentKind `json:"kind" db:"kind"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// CommissionSetting is the platform commission percentage; the most recently
// updated record wins.
type CommissionSetting struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Percent   float64   `json:"percent" db:"percent"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BalanceSummary is the read-side net balance computation for a driver
type BalanceSummary struct {
	DriverID          uuid.UUID `json:"driver_id"`
	Gross             int64     `json:"gross"`
	CommissionPercent float64   `json:"commission_percent"`
	CommissionAmount  int64     `json:"commission_amount"`
	Net               int64     `json:"net"`
}

// SettlementRequest asks the billing service to charge commission for an
// accepted demande.
type SettlementRequest struct {
	DemandeID uuid.UUID `json:"demande_id"`
	DriverID  uuid.UUID `json:"driver_id"`
	Price     int64     `json:"price"`
}

// SettlementResult reports the percentage applied and the amount deducted
type SettlementResult struct {
	DemandeID         uuid.UUID `json:"demande_id"`
	DriverID          uuid.UUID `json:"driver_id"`
	CommissionPercent float64   `json:"commission_percent"`
	CommissionAmount  int64     `json:"commission_amount"`
}

// RecordPaymentRequest is the payload for a balance recharge
type RecordPaymentRequest struct {
	Amount int64 `json:"amount"`
}

// UpdateCommissionRequest is the payload for the admin commission update
type UpdateCommissionRequest struct {
	Percent *float64 `json:"percent"`
}
