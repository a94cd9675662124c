package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// MessageType names a websocket message.
type MessageType string

const (
	MessageTypeMove  MessageType = "move"
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// Message is the websocket envelope sent to clients.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// inbound is the envelope read from clients.
type inbound struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (s *Server) requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// handleSocket sends the current state, then applies every move message
// received until the connection closes.
func (s *Server) handleSocket(conn *websocket.Conn) {
	id := conn.Params("id")
	game, err := s.games.Get(id)
	if err != nil {
		conn.WriteJSON(Message{Type: MessageTypeError, Payload: errorBody(err)}) //nolint:errcheck
		conn.Close()
		return
	}

	game.Subscribe(conn)
	defer game.Unsubscribe(conn)
	if err := game.Notify(conn, Message{Type: MessageTypeState, Payload: game.State()}); err != nil {
		return
	}

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			s.cfg.Logf(2, "game %s: socket closed: %v", id, err)
			return
		}
		if err := s.handleMessage(game, msg); err != nil {
			game.Notify(conn, Message{Type: MessageTypeError, Payload: errorBody(err)}) //nolint:errcheck
		}
	}
}

func (s *Server) handleMessage(game *Session, msg inbound) error {
	switch msg.Type {
	case MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		_, err := game.Play(req.Move, req.Promotion)
		return err
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}
