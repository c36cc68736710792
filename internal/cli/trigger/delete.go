package trigger

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/cli/helper"
	"github.com/direkshan-digital/dlp-triggers/internal/dlp"
)

func deleteCommand(newClient helper.ClientFunc) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Category:  "trigger",
		Usage:     "Delete a DLP job trigger",
		UsageText: "dlp-triggers delete [options] <fullTriggerName>",
		Flags:     helper.ClientFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {

			if numArgs := cmd.Args().Len(); numArgs != 1 {
				return helper.HandleError(cmd, deleteTriggerOperation, fmt.Errorf("expected 1 argument, got %v", numArgs))
			}

			client, err := newClient(ctx, cmd)
			if err != nil {
				return helper.HandleError(cmd, deleteTriggerOperation, err)
			}

			name := cmd.Args().First()

			if err := client.Delete(ctx, &dlp.TriggerDeleteReq{Name: name}); err != nil {
				return helper.HandleError(cmd, deleteTriggerOperation, err)
			}

			_, _ = fmt.Fprintf(cmd.Root().Writer, "Successfully deleted trigger %s.\n", name)
			return nil
		},
	}
}
