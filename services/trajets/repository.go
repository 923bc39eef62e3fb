package trajets

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// TrajetRepo defines the interface for trajet data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/colisgo/colisgo/services/trajets TrajetRepo
type TrajetRepo interface {
	CreateTrajet(ctx context.Context, trajet *models.Trajet) (*models.Trajet, error)
	ListTrajetsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trajet, error)

	// SearchTrajets returns trajets matching origin, destination and mode
	// with a departure date inside [start, end], ascending by date.
	SearchTrajets(ctx context.Context, from, to string, mode models.TransportMode, start, end time.Time) ([]*models.Trajet, error)
}
