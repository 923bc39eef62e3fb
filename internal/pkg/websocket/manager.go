package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/constants"
	"github.com/colisgo/colisgo/internal/pkg/jwt"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// Manager owns the live-update subscriber registry. Subscribers are keyed by
// principal id; every relevant mutation pushes the full entity payload, so
// consumers tolerate duplicates and never need deltas.
type Manager struct {
	mu       sync.RWMutex
	clients  map[string]map[*websocket.Conn]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]map[*websocket.Conn]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and registers a subscriber, then
// blocks reading until the peer disconnects. The read loop discards inbound
// frames; this stream is push-only.
func (m *Manager) HandleConnection(c echo.Context) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	client.Conn = ws

	m.addClient(client)
	defer func() {
		m.removeClient(client)
		ws.Close()
	}()

	logger.Debug("WebSocket subscriber connected",
		logger.String("user_id", client.UserID))

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	token := c.QueryParam("token")
	if token == "" {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwt.ValidateToken(token, m.cfg)
	if err != nil {
		logger.Warn("WebSocket token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.PrincipalID,
		Role:   claims.PrincipalKind,
	}, nil
}

func (m *Manager) addClient(client *models.WebSocketClient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns, ok := m.clients[client.UserID]
	if !ok {
		conns = make(map[*websocket.Conn]*models.WebSocketClient)
		m.clients[client.UserID] = conns
	}
	conns[client.Conn] = client
}

func (m *Manager) removeClient(client *models.WebSocketClient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns, ok := m.clients[client.UserID]
	if !ok {
		return
	}
	delete(conns, client.Conn)
	if len(conns) == 0 {
		delete(m.clients, client.UserID)
	}
}

// SubscriberCount returns the number of open connections for a principal
func (m *Manager) SubscriberCount(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID])
}

// SendMessage writes one event envelope to a connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error event to a connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyUser pushes an event to every open connection of a principal.
// Delivery is best effort: a failing connection is dropped, consumers
// re-fetch full state on reconnect.
func (m *Manager) NotifyUser(userID string, event string, data interface{}) {
	m.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(m.clients[userID]))
	for conn := range m.clients[userID] {
		conns = append(conns, conn)
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.SendMessage(conn, event, data); err != nil {
			logger.Warn("Dropping unhealthy WebSocket subscriber",
				logger.String("user_id", userID),
				logger.Err(err))
			m.mu.Lock()
			if clients, ok := m.clients[userID]; ok {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(m.clients, userID)
				}
			}
			m.mu.Unlock()
			conn.Close()
		}
	}
}
