package helper

import (
	"fmt"
	"time"

	"github.com/ryanuber/columnize"
	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/dlp"
)

func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "
	return columnize.Format(in, columnConf)
}

// FormatDate renders t as M/D/YYYY in the local time zone.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format("1/2/2006")
}

// FormatError renders a failed operation as a single diagnostic line, for
// example "Error in createTrigger: invalid trigger ID".
func FormatError(operation string, err error) string {
	return fmt.Sprintf("Error in %s: %s", operation, dlp.ErrorMessage(err))
}

// HandleError prints the diagnostic for a failed operation to the command's
// writer. Unless the exit-code flag is set, the failure is considered
// reported and nil is returned so the process exits cleanly.
func HandleError(cmd *cli.Command, operation string, err error) error {
	_, _ = fmt.Fprintln(cmd.Root().Writer, FormatError(operation, err))

	if ExitCodeEnabled(cmd) {
		return cli.Exit("", 1)
	}
	return nil
}
