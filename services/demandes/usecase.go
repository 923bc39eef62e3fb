package demandes

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// DemandeUC defines the interface for demande business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/colisgo/colisgo/services/demandes DemandeUC
type DemandeUC interface {
	CreateDemande(ctx context.Context, req *models.CreateDemandeRequest) (*models.Demande, error)
	GetDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error)
	ListDemandes(ctx context.Context) ([]*models.Demande, error)
	ListDemandesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Demande, error)
	ListDemandesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Demande, error)
	ListDemandesByDriverAndTrajet(ctx context.Context, driverID, trajetID uuid.UUID) ([]*models.Demande, error)
	ListDemandesByStatus(ctx context.Context, status models.DemandeStatus) ([]*models.Demande, error)
	UpdateDemande(ctx context.Context, id uuid.UUID, patch *models.DemandePatch) (*models.Demande, error)
	DeleteDemande(ctx context.Context, id uuid.UUID) error

	AcceptDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error)
	RejectDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error)
	ProposePrice(ctx context.Context, id uuid.UUID, req *models.ProposePriceRequest) (*models.Demande, error)
	AdvanceDeliveryStatus(ctx context.Context, id uuid.UUID, req *models.AdvanceDeliveryRequest) (*models.Demande, error)
	AttachReview(ctx context.Context, id uuid.UUID, req *models.ReviewRequest) (*models.Demande, error)
	GetDriverRating(ctx context.Context, driverID uuid.UUID) (*models.DriverRating, error)
}
