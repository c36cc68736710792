package trigger

import (
	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/cli/helper"
)

// Operation names used as the prefix of failure diagnostics, for example
// "Error in createTrigger: ...".
const (
	createTriggerOperation = "createTrigger"
	deleteTriggerOperation = "deleteTrigger"
	listTriggersOperation  = "listTriggers"
)

// Commands returns the job trigger commands. They are mounted at the top level
// of the CLI.
func Commands(newClient helper.ClientFunc) []*cli.Command {
	return []*cli.Command{
		createCommand(newClient),
		deleteCommand(newClient),
		listCommand(newClient),
	}
}
