package server

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/direkshan-digital/dlp-triggers/internal/pkg/logger"
	"github.com/direkshan-digital/dlp-triggers/internal/state"
)

type Config struct {
	Log   *logger.Config `hcl:"log,block"`
	HTTP  *HTTPConfig    `hcl:"http,block"`
	State *state.Config  `hcl:"state,block"`
}

type HTTPConfig struct {
	Addr           string `hcl:"addr,optional"`
	AccessLogLevel string `hcl:"access_log_level,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: logger.DefaultServerConfig(),
		HTTP: &HTTPConfig{
			Addr:           "http://127.0.0.1:8443",
			AccessLogLevel: zap.DebugLevel.String(),
		},
		State: state.DefaultConfig(),
	}
}

// LoadConfigFile decodes an HCL server configuration file. Blocks and
// attributes missing from the file are left empty, so the result is meant to
// be merged over DefaultConfig.
func LoadConfigFile(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	return &cfg, nil
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "The path to an HCL server configuration file",
			Sources: cli.EnvVars("DLP_TRIGGERS_SERVER_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "http-addr",
			Usage:   "The HTTP server address",
			Sources: cli.EnvVars("DLP_TRIGGERS_HTTP_ADDR"),
		},
		&cli.StringFlag{
			Name:    "http-access-log-level",
			Usage:   "The HTTP access log level (debug, info)",
			Sources: cli.EnvVars("DLP_TRIGGERS_HTTP_ACCESS_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "state-backend",
			Usage:   "The state backend to use (dev)",
			Sources: cli.EnvVars("DLP_TRIGGERS_STATE_BACKEND"),
		},
	}
}

func ConfigFromCLI(cmd *cli.Command) *Config {
	return &Config{
		HTTP: &HTTPConfig{
			Addr:           cmd.String("http-addr"),
			AccessLogLevel: cmd.String("http-access-log-level"),
		},
		State: &state.Config{
			Backend: cmd.String("state-backend"),
		},
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

	if other.HTTP != nil {
		httpCfg := HTTPConfig{}
		if result.HTTP != nil {
			httpCfg = *result.HTTP
		}
		if other.HTTP.Addr != "" {
			httpCfg.Addr = other.HTTP.Addr
		}
		if other.HTTP.AccessLogLevel != "" {
			httpCfg.AccessLogLevel = other.HTTP.AccessLogLevel
		}
		result.HTTP = &httpCfg
	}

	if other.State != nil {
		result.State = result.State.Merge(other.State)
	}

	if other.Log != nil {
		result.Log = result.Log.Merge(other.Log)
	}

	return &result
}

func (c *Config) Validate() error {
	if c.HTTP == nil || c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP address cannot be empty")
	}
	if !slices.Contains([]string{zap.DebugLevel.String(), zap.InfoLevel.String()}, c.HTTP.AccessLogLevel) {
		return fmt.Errorf("unsupported HTTP access log level: %q", c.HTTP.AccessLogLevel)
	}
	if c.State == nil {
		return fmt.Errorf("state config cannot be empty")
	}
	return c.State.Validate()
}
