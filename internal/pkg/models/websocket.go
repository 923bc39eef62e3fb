package models

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is one authenticated live-update subscriber. Consumers
// receive full entity payloads on every relevant mutation and are expected
// to tolerate duplicates.
type WebSocketClient struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
}
