package trajets

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// TrajetUC defines the interface for trajet business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/colisgo/colisgo/services/trajets TrajetUC
type TrajetUC interface {
	CreateTrajet(ctx context.Context, req *models.CreateTrajetRequest) (*models.Trajet, error)
	ListTrajetsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trajet, error)
	SearchTrajets(ctx context.Context, params *models.TrajetSearchParams) ([]*models.Trajet, error)
}
