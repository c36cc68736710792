package trigger

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/cli/helper"
	"github.com/direkshan-digital/dlp-triggers/internal/dlp"
)

func listCommand(newClient helper.ClientFunc) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Category:  "trigger",
		Usage:     "List the DLP job triggers of the project",
		UsageText: "dlp-triggers list [options]",
		Flags:     helper.ClientFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {

			if numArgs := cmd.Args().Len(); numArgs != 0 {
				return helper.HandleError(cmd, listTriggersOperation, fmt.Errorf("expected 0 arguments, got %v", numArgs))
			}

			client, err := newClient(ctx, cmd)
			if err != nil {
				return helper.HandleError(cmd, listTriggersOperation, err)
			}

			resp, err := client.List(ctx, &dlp.TriggerListReq{})
			if err != nil {
				return helper.HandleError(cmd, listTriggersOperation, err)
			}

			outputTriggerList(cmd.Root().Writer, resp.Triggers)
			return nil
		},
	}
}

func outputTriggerList(w io.Writer, triggers []*dlp.JobTrigger) {
	if len(triggers) == 0 {
		_, _ = fmt.Fprint(w, "No triggers found\n")
		return
	}

	for _, trigger := range triggers {
		outputTrigger(w, trigger)
	}
}

func outputTrigger(w io.Writer, t *dlp.JobTrigger) {
	printer := pterm.DefaultBasicText.WithWriter(w)

	printer.Printfln("Trigger %s", t.Name)
	printer.Printfln("  Display Name: %s", t.DisplayName)
	printer.Printfln("  Description: %s", t.Description)
	printer.Printfln("  Created: %s", helper.FormatDate(t.CreateTime))
	printer.Printfln("  Updated: %s", helper.FormatDate(t.UpdateTime))
	printer.Printfln("  Status: %s", t.Status)
	printer.Printfln("  Error count: %d", t.ErrorCount)
}
