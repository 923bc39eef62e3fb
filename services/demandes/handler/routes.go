package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/database"
	"github.com/colisgo/colisgo/internal/pkg/middleware"
	"github.com/colisgo/colisgo/internal/pkg/models"
	natspkg "github.com/colisgo/colisgo/internal/pkg/nats"
	"github.com/colisgo/colisgo/internal/pkg/websocket"
	"github.com/colisgo/colisgo/services/demandes"
	httpHandler "github.com/colisgo/colisgo/services/demandes/handler/http"
	natsHandler "github.com/colisgo/colisgo/services/demandes/handler/nats"
)

// Handler combines all handlers for the demandes service
type Handler struct {
	demandesHTTP *httpHandler.DemandesHandler
	demandesNATS *natsHandler.DemandesHandler
	wsManager    *websocket.Manager
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	demandeUC demandes.DemandeUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	wsManager := websocket.NewManager(cfg.JWT)
	return &Handler{
		demandesHTTP: httpHandler.NewDemandesHandler(demandeUC),
		demandesNATS: natsHandler.NewDemandesHandler(natsClient, wsManager),
		wsManager:    wsManager,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *database.RedisClient) {
	auth := middleware.BearerAuth(h.cfg.JWT)
	limiter := middleware.NewRateLimiter(redisClient, h.cfg.RateLimit)

	demandesGroup := e.Group("/demandes", auth)
	demandesGroup.POST("", h.demandesHTTP.CreateDemande)
	demandesGroup.GET("", h.demandesHTTP.ListDemandes)
	demandesGroup.GET("/:id", h.demandesHTTP.GetDemande)
	demandesGroup.PUT("/:id", h.demandesHTTP.UpdateDemande)
	demandesGroup.DELETE("/:id", h.demandesHTTP.DeleteDemande)

	// negotiation endpoints are rate limited per client IP
	demandesGroup.PUT("/:id/accept", h.demandesHTTP.AcceptDemande, limiter.Limit("negotiation"))
	demandesGroup.PUT("/:id/reject", h.demandesHTTP.RejectDemande, limiter.Limit("negotiation"))
	demandesGroup.PUT("/:id/propose-price", h.demandesHTTP.ProposePrice, limiter.Limit("negotiation"))

	demandesGroup.PUT("/:id/delivery-status", h.demandesHTTP.AdvanceDeliveryStatus)
	demandesGroup.PATCH("/:id/review", h.demandesHTTP.AttachReview)

	demandesGroup.GET("/user/:userID", h.demandesHTTP.ListDemandesByUser)
	demandesGroup.GET("/driver/:driverID", h.demandesHTTP.ListDemandesByDriver)
	demandesGroup.GET("/driver/:driverID/trajet/:trajetID", h.demandesHTTP.ListDemandesByDriverAndTrajet)
	demandesGroup.GET("/status/:status", h.demandesHTTP.ListDemandesByStatus)

	e.GET("/drivers/:driverID/rating", h.demandesHTTP.GetDriverRating, auth)

	// live demande updates; the manager authenticates the token itself so
	// browser clients can pass it as a query parameter
	e.GET("/ws", h.wsManager.HandleConnection)
}

// InitNATSConsumers starts the event consumers feeding the WebSocket fan-out
func (h *Handler) InitNATSConsumers() error {
	return h.demandesNATS.InitNATSConsumers()
}
