package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/colisgo/colisgo/internal/pkg/constants"
	"github.com/colisgo/colisgo/internal/pkg/models"
	natspkg "github.com/colisgo/colisgo/internal/pkg/nats"
)

// DemandeGW publishes demande lifecycle events to NATS. Every event carries
// the full demande payload so consumers never need to apply deltas.
type DemandeGW struct {
	nc *natspkg.Client
}

// NewDemandeGW creates a new demande gateway
func NewDemandeGW(nc *natspkg.Client) *DemandeGW {
	return &DemandeGW{nc: nc}
}

func (g *DemandeGW) PublishDemandeCreated(ctx context.Context, demande *models.Demande) error {
	return g.publish(constants.SubjectDemandeCreated, demande)
}

func (g *DemandeGW) PublishDemandeUpdated(ctx context.Context, demande *models.Demande) error {
	return g.publish(constants.SubjectDemandeUpdated, demande)
}

func (g *DemandeGW) PublishDemandeAccepted(ctx context.Context, demande *models.Demande) error {
	return g.publish(constants.SubjectDemandeAccepted, demande)
}

func (g *DemandeGW) PublishDemandeRejected(ctx context.Context, demande *models.Demande) error {
	return g.publish(constants.SubjectDemandeRejected, demande)
}

func (g *DemandeGW) PublishDeliveryUpdated(ctx context.Context, demande *models.Demande) error {
	return g.publish(constants.SubjectDemandeDeliveryUpdated, demande)
}

func (g *DemandeGW) publish(subject string, demande *models.Demande) error {
	data, err := json.Marshal(demande)
	if err != nil {
		return fmt.Errorf("failed to marshal demande event: %w", err)
	}
	if err := g.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
