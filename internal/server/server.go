package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/direkshan-digital/dlp-triggers/internal/pkg/logger"
	"github.com/direkshan-digital/dlp-triggers/internal/pkg/version"
	"github.com/direkshan-digital/dlp-triggers/internal/server/http"
	"github.com/direkshan-digital/dlp-triggers/internal/server/state"
	stateImpl "github.com/direkshan-digital/dlp-triggers/internal/state"
)

// Server is a local emulator of the DLP job trigger API.
type Server struct {
	baseLogger   *zap.Logger
	serverLogger *zap.Logger

	state state.State

	httpServer *http.Server
}

func NewServer(cfg *Config) (*Server, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	zapLogger, err := logger.NewZap(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	zapLogger.Info("starting server", zap.String("version", version.Get()))

	server := Server{
		baseLogger:   zapLogger,
		serverLogger: zapLogger.Named(logger.ComponentNameServer),
	}

	stateBackend, err := stateImpl.NewBackend(cfg.State, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create state backend: %w", err)
	}
	server.state = stateBackend

	httpServerReq := http.ServerReq{
		Logger:             zapLogger,
		HTTPAddr:           cfg.HTTP.Addr,
		HTTPAccessLogLevel: cfg.HTTP.AccessLogLevel,
		State:              server.state,
	}

	httpServer, err := http.NewServer(&httpServerReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}
	server.httpServer = httpServer

	return &server, nil
}

// Addr returns the address the HTTP server is listening on.
func (s *Server) Addr() string { return s.httpServer.Addr() }

func (s *Server) Start() {
	s.httpServer.Start()
}

func (s *Server) Stop() {
	s.httpServer.Stop()
	_ = s.baseLogger.Sync()
}

func (s *Server) WaitForSignals() {

	signalCh := make(chan os.Signal, 3)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	// Wait to receive a signal. This blocks until we are notified.
	for {
		s.serverLogger.Debug("wait for signal handler started")

		sig := <-signalCh
		s.serverLogger.Info("received signal", zap.String("signal", sig.String()))

		// SIGHUP has no reload behaviour yet, so it is ignored. Everything
		// else means exit.
		switch sig {
		case syscall.SIGHUP:
		default:
			s.Stop()
			return
		}
	}
}
