package server

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/cli/helper"
	"github.com/direkshan-digital/dlp-triggers/internal/pkg/logger"
	"github.com/direkshan-digital/dlp-triggers/internal/server"
)

const runCommandCLIErrorMsg = "failed to run a DLP emulator server"

func runCommand() *cli.Command {
	return &cli.Command{
		Name:     "run",
		Category: "server",
		Usage:    "Run a local DLP emulator server",
		Flags:    append(logger.Flags(), server.Flags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {

			cfg, err := configFromCommand(cmd)
			if err != nil {
				return cli.Exit(formatError(err), 1)
			}

			srv, err := server.NewServer(cfg)
			if err != nil {
				return cli.Exit(formatError(err), 1)
			}
			srv.Start()
			srv.WaitForSignals()
			return nil
		},
	}
}

// configFromCommand layers the server configuration: defaults, then the
// optional config file, then CLI flags.
func configFromCommand(cmd *cli.Command) (*server.Config, error) {

	cfg := server.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		fileCfg, err := server.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	cfg.Log = cfg.Log.Merge(logger.ConfigFromCLI(cmd))

	return cfg.Merge(server.ConfigFromCLI(cmd)), nil
}

func formatError(err error) string {
	return helper.FormatKV([]string{
		fmt.Sprintf("Description|%s", runCommandCLIErrorMsg),
		fmt.Sprintf("Error|%s", err),
	})
}
