package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/models"
	nrpkg "github.com/colisgo/colisgo/internal/pkg/newrelic"
	"github.com/colisgo/colisgo/internal/utils"
	"github.com/colisgo/colisgo/services/trajets"
)

// TrajetsHandler handles HTTP requests for trajet operations
type TrajetsHandler struct {
	trajetUC trajets.TrajetUC
}

// NewTrajetsHandler creates a new trajet HTTP handler
func NewTrajetsHandler(trajetUC trajets.TrajetUC) *TrajetsHandler {
	return &TrajetsHandler{trajetUC: trajetUC}
}

// CreateTrajet schedules a new run
func (h *TrajetsHandler) CreateTrajet(c echo.Context) error {
	var req models.CreateTrajetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trajet, err := h.trajetUC.CreateTrajet(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trajet created successfully", trajet)
}

// ListTrajetsByDriver lists a driver's scheduled runs
func (h *TrajetsHandler) ListTrajetsByDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	list, err := h.trajetUC.ListTrajetsByDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}

// SearchTrajets runs the windowed route search
func (h *TrajetsHandler) SearchTrajets(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trajets.Search")

	params := &models.TrajetSearchParams{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
		Mode: models.TransportMode(c.QueryParam("mode")),
		Date: c.QueryParam("date"),
	}
	if raw := c.QueryParam("range_days"); raw != "" {
		rangeDays, err := strconv.Atoi(raw)
		if err != nil || rangeDays < 0 {
			return utils.BadRequestResponse(c, "range_days must be a non-negative integer")
		}
		params.RangeDays = rangeDays
	}

	list, err := h.trajetUC.SearchTrajets(c.Request().Context(), params)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}
