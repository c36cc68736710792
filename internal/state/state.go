package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/direkshan-digital/dlp-triggers/internal/pkg/logger"
	"github.com/direkshan-digital/dlp-triggers/internal/server/state"
	"github.com/direkshan-digital/dlp-triggers/internal/state/dev"
)

const (
	BackendDev = "dev"
)

type Config struct {
	Backend string `hcl:"backend,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendDev,
	}
}

func (c *Config) Merge(other *Config) *Config {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}

	result := *c

	if other.Backend != "" {
		result.Backend = other.Backend
	}

	return &result
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendDev:
		return nil
	default:
		return fmt.Errorf("unsupported state backend: %s", c.Backend)
	}
}

func NewBackend(cfg *Config, zapLogger *zap.Logger) (state.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendDev:
		return dev.New(zapLogger.Named(logger.ComponentNameState)), nil
	default:
		panic("not implemented")
	}
}
