package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/colisgo/colisgo/internal/pkg/constants"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
	natspkg "github.com/colisgo/colisgo/internal/pkg/nats"
	"github.com/colisgo/colisgo/internal/pkg/websocket"
)

// DemandesHandler consumes demande events and fans them out to the rider's
// live WebSocket subscribers. Delivery is best effort: subscribers tolerate
// drops and duplicates because every event carries the full demande payload.
type DemandesHandler struct {
	nc        *natspkg.Client
	wsManager *websocket.Manager
	subs      []*nats.Subscription
}

// NewDemandesHandler creates a new demande NATS consumer
func NewDemandesHandler(nc *natspkg.Client, wsManager *websocket.Manager) *DemandesHandler {
	return &DemandesHandler{nc: nc, wsManager: wsManager}
}

// InitNATSConsumers subscribes to every demande subject
func (h *DemandesHandler) InitNATSConsumers() error {
	sub, err := h.nc.Subscribe(constants.SubjectDemandeAll, h.handleDemandeEvent)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)
	return nil
}

func (h *DemandesHandler) handleDemandeEvent(msg *nats.Msg) {
	var demande models.Demande
	if err := json.Unmarshal(msg.Data, &demande); err != nil {
		logger.Warn("Discarding malformed demande event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.wsManager.NotifyUser(demande.UserID.String(), constants.EventDemandeUpdate, demande)

	logger.Debug("Demande event fanned out",
		logger.String("subject", msg.Subject),
		logger.String("demande_id", demande.ID.String()),
		logger.Int("subscribers", h.wsManager.SubscriberCount(demande.UserID.String())))
}
