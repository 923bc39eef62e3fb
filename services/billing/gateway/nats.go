package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/colisgo/colisgo/internal/pkg/constants"
	"github.com/colisgo/colisgo/internal/pkg/models"
	natspkg "github.com/colisgo/colisgo/internal/pkg/nats"
)

// BillingGW publishes billing events to NATS
type BillingGW struct {
	nc *natspkg.Client
}

// NewBillingGW creates a new billing gateway
func NewBillingGW(nc *natspkg.Client) *BillingGW {
	return &BillingGW{nc: nc}
}

func (g *BillingGW) PublishCommissionCharged(ctx context.Context, result *models.SettlementResult) error {
	return g.publish(constants.SubjectCommissionCharged, result)
}

func (g *BillingGW) PublishPaymentRecorded(ctx context.Context, entry *models.PaymentHistoryEntry) error {
	return g.publish(constants.SubjectPaymentRecorded, entry)
}

func (g *BillingGW) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal billing event: %w", err)
	}
	if err := g.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
