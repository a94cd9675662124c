// Package server exposes games over HTTP and websockets.
package server

import (
	"strings"
	"sync"
	"time"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/output"
)

// Subscriber receives a message after every move of a game.
// *websocket.Conn satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// Session is one game in progress.
type Session struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	pos     engine.Position
	history []string
	subs    map[Subscriber]struct{}
}

func newSession(id string, start engine.Position) *Session {
	return &Session{
		ID:      id,
		Created: time.Now(),
		pos:     start,
		subs:    make(map[Subscriber]struct{}),
	}
}

// GameState is the JSON body returned for a game.
type GameState struct {
	ID      string           `json:"id"`
	History []string         `json:"history"`
	State   *output.Snapshot `json:"state"`
}

// Position returns a copy of the current position.
func (s *Session) Position() engine.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// State returns the current game state.
func (s *Session) State() *GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() *GameState {
	last := ""
	if n := len(s.history); n > 0 {
		last = s.history[n-1]
	}
	return &GameState{
		ID:      s.ID,
		History: append([]string{}, s.history...),
		State:   output.NewSnapshot(&s.pos, last),
	}
}

// Play validates and applies a move such as "e2 e4". promotion is the
// one-letter choice for a pawn reaching its last rank and may be empty
// otherwise. Subscribers are sent the new state.
func (s *Session) Play(move, promotion string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.pos.Validate(move)
	if err != nil {
		return nil, err
	}
	kind := chess.None
	if strings.TrimSpace(promotion) != "" {
		if kind, err = engine.ParsePromotion(promotion); err != nil {
			return nil, err
		}
	}
	next, err := m.Apply(kind)
	if err != nil {
		return nil, err
	}

	s.pos = next
	entry := m.String()
	if m.NeedsPromotion() {
		entry += " " + string(kind.Letter()|0x20)
	}
	s.history = append(s.history, entry)

	state := s.stateLocked()
	s.broadcastLocked(Message{Type: MessageTypeState, Payload: state})
	return state, nil
}

// Subscribe registers sub for state updates.
func (s *Session) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub] = struct{}{}
}

// Unsubscribe removes sub.
func (s *Session) Unsubscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, sub)
}

// Subscribers returns the number of registered subscribers.
func (s *Session) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Notify sends msg to one subscriber, serialised with broadcasts.
func (s *Session) Notify(sub Subscriber, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sub.WriteJSON(msg)
}

// broadcastLocked drops subscribers whose write fails.
func (s *Session) broadcastLocked(msg Message) {
	for sub := range s.subs {
		if err := sub.WriteJSON(msg); err != nil {
			delete(s.subs, sub)
		}
	}
}
