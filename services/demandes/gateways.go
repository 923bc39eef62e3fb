package demandes

import (
	"context"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// DemandeGW defines the interface for demande event publishing
// go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/colisgo/colisgo/services/demandes DemandeGW,BillingClient
type DemandeGW interface {
	PublishDemandeCreated(ctx context.Context, demande *models.Demande) error
	PublishDemandeUpdated(ctx context.Context, demande *models.Demande) error
	PublishDemandeAccepted(ctx context.Context, demande *models.Demande) error
	PublishDemandeRejected(ctx context.Context, demande *models.Demande) error
	PublishDeliveryUpdated(ctx context.Context, demande *models.Demande) error
}

// BillingClient is the synchronous client to the billing service used for
// settlement on acceptance.
type BillingClient interface {
	ChargeCommission(ctx context.Context, req *models.SettlementRequest) (*models.SettlementResult, error)
}
