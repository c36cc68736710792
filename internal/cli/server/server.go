package server

import (
	"github.com/urfave/cli/v3"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:            "server",
		Usage:           "Run a local emulator of the DLP job trigger API",
		HideHelpCommand: true,
		UsageText:       "dlp-triggers server <command> [options] [args]",
		Commands: []*cli.Command{
			runCommand(),
		},
	}
}
