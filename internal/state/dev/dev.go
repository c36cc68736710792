package dev

import (
	"sync"

	"go.uber.org/zap"
	dlpapi "google.golang.org/api/dlp/v2"

	serverstate "github.com/direkshan-digital/dlp-triggers/internal/server/state"
)

// State is an in-memory state backend. Everything it holds is lost when the
// process exits.
type State struct {
	logger *zap.Logger

	// triggers is keyed by the fully-qualified job trigger name.
	triggers     map[string]*dlpapi.GooglePrivacyDlpV2JobTrigger
	triggersLock sync.RWMutex
}

func New(logger *zap.Logger) serverstate.State {
	return &State{
		logger:   logger,
		triggers: make(map[string]*dlpapi.GooglePrivacyDlpV2JobTrigger),
	}
}
