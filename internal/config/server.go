package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP game service.
type ServerConfig struct {
	ListenAddr string

	// AllowOrigins is the CORS origin list, comma separated.
	AllowOrigins string

	// MaxGames caps the number of live games; 0 means no limit.
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:   ":8080",
		AllowOrigins: "*",
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if strings.TrimSpace(s.ListenAddr) == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games = %d: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
