package helper

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/direkshan-digital/dlp-triggers/internal/dlp"
)

const (
	projectCLIFlag         = "project"
	endpointCLIFlag        = "endpoint"
	credentialsFileCLIFlag = "credentials-file"
	accessTokenCLIFlag     = "access-token"
	exitCodeCLIFlag        = "exit-code"
)

// ClientFunc builds the job trigger client used by a command. Commands accept
// one so tests can substitute a fake.
type ClientFunc func(ctx context.Context, cmd *cli.Command) (dlp.Triggers, error)

// ClientFlags are the flags shared by every command that talks to the DLP
// service. They are normally supplied through the environment.
func ClientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Aliases: []string{"c"},
			Sources: cli.EnvVars("GCLOUD_PROJECT", "GOOGLE_CLOUD_PROJECT"),
			Name:    projectCLIFlag,
			Usage:   "The Google Cloud project to make API requests against",
		},
		&cli.StringFlag{
			Sources: cli.EnvVars("DLP_ENDPOINT"),
			Name:    endpointCLIFlag,
			Usage:   "Override the DLP API endpoint, for example with a local emulator address",
		},
		&cli.StringFlag{
			Sources: cli.EnvVars("GOOGLE_APPLICATION_CREDENTIALS"),
			Name:    credentialsFileCLIFlag,
			Usage:   "Path to a service account credentials file",
		},
		&cli.StringFlag{
			Sources: cli.EnvVars("DLP_ACCESS_TOKEN"),
			Name:    accessTokenCLIFlag,
			Usage:   "OAuth2 access token used instead of application default credentials",
		},
		&cli.BoolFlag{
			Sources: cli.EnvVars("DLP_TRIGGERS_EXIT_CODE"),
			Name:    exitCodeCLIFlag,
			Usage:   "Exit with a non-zero status when the DLP operation fails",
		},
	}
}

func ClientConfigFromFlags(cmd *cli.Command) *dlp.Config {

	defaultConfig := dlp.DefaultConfig()

	defaultConfig.Project = cmd.String(projectCLIFlag)
	defaultConfig.Endpoint = cmd.String(endpointCLIFlag)
	defaultConfig.CredentialsFile = cmd.String(credentialsFileCLIFlag)
	defaultConfig.AccessToken = cmd.String(accessTokenCLIFlag)

	return defaultConfig
}

// NewClient is the ClientFunc used outside of tests.
func NewClient(ctx context.Context, cmd *cli.Command) (dlp.Triggers, error) {
	client, err := dlp.NewClient(ctx, ClientConfigFromFlags(cmd))
	if err != nil {
		return nil, err
	}
	return client.Triggers(), nil
}

// ExitCodeEnabled reports whether failures should be turned into a non-zero
// exit status rather than only being printed.
func ExitCodeEnabled(cmd *cli.Command) bool { return cmd.Bool(exitCodeCLIFlag) }
