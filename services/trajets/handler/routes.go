package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/middleware"
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/services/trajets"
	httpHandler "github.com/colisgo/colisgo/services/trajets/handler/http"
)

// Handler combines all handlers for the trajets service
type Handler struct {
	trajetsHTTP *httpHandler.TrajetsHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(trajetUC trajets.TrajetUC, cfg *models.Config) *Handler {
	return &Handler{
		trajetsHTTP: httpHandler.NewTrajetsHandler(trajetUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.BearerAuth(h.cfg.JWT)

	group := e.Group("/trajets", auth)
	group.POST("", h.trajetsHTTP.CreateTrajet)
	group.GET("/driver/:driverID", h.trajetsHTTP.ListTrajetsByDriver)
	group.GET("/search", h.trajetsHTTP.SearchTrajets)
}
