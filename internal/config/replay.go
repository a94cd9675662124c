package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// ReplayConfig holds settings for replaying script files.
type ReplayConfig struct {
	// Workers is the number of scripts replayed at once.
	Workers int

	// FailFast abandons the remaining scripts after the first failure.
	FailFast bool
}

// NewReplayConfig creates a ReplayConfig using one worker per CPU.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{Workers: runtime.NumCPU()}
}

// Validate checks that the replay configuration is usable.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers = %d: %w", r.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
