package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/services/trajets"
)

const dateLayout = "2006-01-02"

// trajetUC implements the trajets.TrajetUC interface
type trajetUC struct {
	cfg        *models.Config
	trajetRepo trajets.TrajetRepo
}

// NewTrajetUC creates a new trajet use case
func NewTrajetUC(cfg *models.Config, trajetRepo trajets.TrajetRepo) trajets.TrajetUC {
	return &trajetUC{cfg: cfg, trajetRepo: trajetRepo}
}

// CreateTrajet schedules a new transport run
func (uc *trajetUC) CreateTrajet(ctx context.Context, req *models.CreateTrajetRequest) (*models.Trajet, error) {
	if req.DriverID == uuid.Nil {
		return nil, apperror.Validation("driver_id is required")
	}
	if req.Origin == "" || req.Destination == "" {
		return nil, apperror.Validation("origin and destination are required")
	}
	if !req.TransportMode.Valid() {
		return nil, apperror.Validation("unknown transport mode: " + string(req.TransportMode))
	}

	departure, err := parseUTCDate(req.DepartureDate)
	if err != nil {
		return nil, err
	}
	if departure.Before(todayUTC()) {
		return nil, apperror.Validation("departure date cannot be in the past")
	}

	trajet := &models.Trajet{
		ID:            uuid.New(),
		DriverID:      req.DriverID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		TransportMode: req.TransportMode,
		DepartureDate: departure,
	}

	created, err := uc.trajetRepo.CreateTrajet(ctx, trajet)
	if err != nil {
		logger.Error("Failed to create trajet",
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
		return nil, apperror.Internal("failed to create trajet", err)
	}
	return created, nil
}

// ListTrajetsByDriver returns a driver's scheduled runs
func (uc *trajetUC) ListTrajetsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trajet, error) {
	return uc.trajetRepo.ListTrajetsByDriver(ctx, driverID)
}

// SearchTrajets runs the windowed route search. Schedules are sparse, so the
// search widens the requested date into a window of nearby departures; the
// forward clamp keeps already-departed runs out of the results.
func (uc *trajetUC) SearchTrajets(ctx context.Context, params *models.TrajetSearchParams) ([]*models.Trajet, error) {
	if params.From == "" || params.To == "" {
		return nil, apperror.Validation("from and to are required")
	}
	if !params.Mode.Valid() {
		return nil, apperror.Validation("unknown transport mode: " + string(params.Mode))
	}

	date, err := parseUTCDate(params.Date)
	if err != nil {
		return nil, err
	}

	today := todayUTC()
	if date.Before(today) {
		return nil, apperror.Validation("cannot search the past")
	}

	rangeDays := params.RangeDays
	if rangeDays <= 0 {
		rangeDays = uc.cfg.Trajets.SearchRangeDays
	}

	start, end := searchWindow(date, today, rangeDays)

	results, err := uc.trajetRepo.SearchTrajets(ctx, params.From, params.To, params.Mode, start, end)
	if err != nil {
		return nil, apperror.Internal("failed to search trajets", err)
	}
	return results, nil
}

// searchWindow computes [max(date-range, today), date+range], both bounds at
// UTC midnight.
func searchWindow(date, today time.Time, rangeDays int) (time.Time, time.Time) {
	start := date.AddDate(0, 0, -rangeDays)
	if start.Before(today) {
		start = today
	}
	end := date.AddDate(0, 0, rangeDays)
	return start, end
}

// parseUTCDate reads a YYYY-MM-DD calendar date at UTC midnight so timezone
// drift never moves it across a day boundary.
func parseUTCDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperror.Validation("date is required")
	}
	date, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperror.Validation("invalid date, expected YYYY-MM-DD")
	}
	return date, nil
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
