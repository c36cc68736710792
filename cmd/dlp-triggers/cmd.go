package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/cli/helper"
	"github.com/direkshan-digital/dlp-triggers/internal/cli/server"
	"github.com/direkshan-digital/dlp-triggers/internal/cli/trigger"
	"github.com/direkshan-digital/dlp-triggers/internal/pkg/version"
)

func main() {

	cli.VersionPrinter = func(cmd *cli.Command) {
		_, _ = fmt.Fprint(cmd.Writer, helper.FormatKV([]string{
			fmt.Sprintf("Version|%s", cmd.Version),
			fmt.Sprintf("Build Time|%s", version.BuildTime),
			fmt.Sprintf("Build Commit|%s", version.BuildCommit),
		}))
		_, _ = fmt.Fprint(cmd.Writer, "\n")
	}

	cliApp := cli.Command{
		Commands: append(
			trigger.Commands(helper.NewClient),
			server.Command(),
		),
		Name:  "dlp-triggers",
		Usage: "Create, list, and delete Cloud DLP job triggers",
		Description: strings.TrimSpace(`
dlp-triggers manages Cloud DLP job triggers that periodically inspect a Cloud
Storage bucket for sensitive data. The project is read from GCLOUD_PROJECT and
requests are authenticated with application default credentials unless
DLP_ENDPOINT points at a local emulator started with "dlp-triggers server run".`),
		Version:         version.Get(),
		HideHelpCommand: true,
	}

	if err := cliApp.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprint(os.Stderr, err.Error()+"\n")
		os.Exit(1)
	}
}
