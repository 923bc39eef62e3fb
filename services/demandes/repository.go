package demandes

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// DemandeRepo defines the interface for demande data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/colisgo/colisgo/services/demandes DemandeRepo
type DemandeRepo interface {
	CreateDemande(ctx context.Context, demande *models.Demande) (*models.Demande, error)
	GetDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error)
	ListDemandes(ctx context.Context) ([]*models.Demande, error)
	ListDemandesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Demande, error)
	ListDemandesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Demande, error)
	ListDemandesByDriverAndTrajet(ctx context.Context, driverID, trajetID uuid.UUID) ([]*models.Demande, error)
	ListDemandesByStatus(ctx context.Context, status models.DemandeStatus) ([]*models.Demande, error)
	UpdateDemande(ctx context.Context, demande *models.Demande) (*models.Demande, error)
	DeleteDemande(ctx context.Context, id uuid.UUID) error

	// ReplaceBaggages swaps the cargo set of a demande inside one transaction
	ReplaceBaggages(ctx context.Context, demandeID uuid.UUID, baggageIDs []uuid.UUID) error
	// ResolveBaggages returns the subset of ids that exist
	ResolveBaggages(ctx context.Context, baggageIDs []uuid.UUID) ([]uuid.UUID, error)

	// AppendDeliveryEvent persists the new delivery status and its history
	// record atomically.
	AppendDeliveryEvent(ctx context.Context, demandeID uuid.UUID, status models.DeliveryStatus) error
	GetDeliveryHistory(ctx context.Context, demandeID uuid.UUID) ([]models.DeliveryEvent, error)

	// GetDriverRatingStats aggregates ratings over a driver's demandes
	GetDriverRatingStats(ctx context.Context, driverID uuid.UUID) (sum float64, count int, err error)
}
