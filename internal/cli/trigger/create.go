package trigger

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/cli/helper"
	"github.com/direkshan-digital/dlp-triggers/internal/dlp"
	"github.com/direkshan-digital/dlp-triggers/internal/pkg/state"
)

const (
	nameFlag                 = "name"
	autoPopulateTimespanFlag = "autoPopulateTimespan"
	minLikelihoodFlag        = "minLikelihood"
	infoTypeFlag             = "infoType"
	maxFindingsFlag          = "maxFindings"
	displayNameFlag          = "displayName"
	descriptionFlag          = "description"
)

func createFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Aliases: []string{"n"},
			Name:    nameFlag,
			Usage:   "The name of the trigger; generated by the service when empty",
		},
		&cli.BoolFlag{
			Name:  autoPopulateTimespanFlag,
			Usage: "Limit scans to new content only",
		},
		&cli.StringFlag{
			Aliases: []string{"m"},
			Name:    minLikelihoodFlag,
			Value:   state.LikelihoodUnspecified,
			Usage:   "The minimum likelihood required before returning a match",
		},
		&cli.StringSliceFlag{
			Aliases: []string{"t"},
			Name:    infoTypeFlag,
			Value:   []string{"PHONE_NUMBER", "EMAIL_ADDRESS", "CREDIT_CARD_NUMBER"},
			Usage:   "The info type to inspect for; may be repeated",
		},
		&cli.IntFlag{
			Aliases: []string{"f"},
			Name:    maxFindingsFlag,
			Usage:   "The maximum number of findings to report per item (0 = server maximum)",
		},
		&cli.StringFlag{
			Aliases: []string{"d"},
			Name:    displayNameFlag,
			Usage:   "The human-readable name of the trigger",
		},
		&cli.StringFlag{
			Aliases: []string{"s"},
			Name:    descriptionFlag,
			Usage:   "A description of the trigger",
		},
	}
}

func createCommand(newClient helper.ClientFunc) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Category:  "trigger",
		Usage:     "Create a DLP job trigger that periodically scans a Cloud Storage bucket",
		UsageText: "dlp-triggers create [options] <bucketName> <recurrencePeriodDays>",
		Flags:     append(createFlags(), helper.ClientFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {

			if numArgs := cmd.Args().Len(); numArgs != 2 {
				return helper.HandleError(cmd, createTriggerOperation, fmt.Errorf("expected 2 arguments, got %v", numArgs))
			}

			recurrencePeriodDays, err := strconv.Atoi(cmd.Args().Get(1))
			if err != nil {
				return helper.HandleError(cmd, createTriggerOperation,
					fmt.Errorf("invalid recurrence period %q: must be a whole number of days", cmd.Args().Get(1)))
			}

			client, err := newClient(ctx, cmd)
			if err != nil {
				return helper.HandleError(cmd, createTriggerOperation, err)
			}

			req := dlp.TriggerCreateReq{
				TriggerID: cmd.String(nameFlag),
				Trigger: &dlp.JobTrigger{
					DisplayName:          cmd.String(displayNameFlag),
					Description:          cmd.String(descriptionFlag),
					Status:               state.StatusHealthy,
					BucketName:           cmd.Args().First(),
					AutoPopulateTimespan: cmd.Bool(autoPopulateTimespanFlag),
					RecurrencePeriodDays: recurrencePeriodDays,
					InfoTypes:            cmd.StringSlice(infoTypeFlag),
					MinLikelihood:        cmd.String(minLikelihoodFlag),
					MaxFindingsPerItem:   int64(cmd.Int(maxFindingsFlag)),
				},
			}

			resp, err := client.Create(ctx, &req)
			if err != nil {
				return helper.HandleError(cmd, createTriggerOperation, err)
			}

			_, _ = fmt.Fprintf(cmd.Root().Writer, "Successfully created trigger %s\n", resp.Trigger.Name)
			return nil
		},
	}
}
