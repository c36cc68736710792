// Package dlp is a small client for the job trigger resources of the Cloud
// DLP v2 API.
package dlp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	dlpapi "google.golang.org/api/dlp/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/direkshan-digital/dlp-triggers/internal/pkg/version"
)

type Config struct {

	// Project is the Google Cloud project that owns the job triggers.
	Project string

	// Endpoint overrides the service address, for example to talk to a local
	// emulator. When set, requests are not authenticated.
	Endpoint string

	// AccessToken and CredentialsFile select how requests are authenticated
	// against the real service. When neither is set, application default
	// credentials are used.
	AccessToken     string
	CredentialsFile string

	UserAgent string
}

func DefaultConfig() *Config {
	return &Config{
		UserAgent: "dlp-triggers/" + version.Get(),
	}
}

// Client implements Triggers using the DLP v2 REST API.
type Client struct {
	project string
	service *dlpapi.Service
}

func NewClient(ctx context.Context, cfg *Config) (*Client, error) {

	if cfg.Project == "" {
		return nil, errors.New("project cannot be empty")
	}

	opts := []option.ClientOption{option.WithUserAgent(cfg.UserAgent)}

	switch {
	case cfg.Endpoint != "":
		endpoint := cfg.Endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	case cfg.AccessToken != "":
		opts = append(opts, option.WithTokenSource(
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	service, err := dlpapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create DLP service client: %w", err)
	}

	return &Client{project: cfg.Project, service: service}, nil
}

func (c *Client) Triggers() Triggers {
	return &triggers{client: c}
}

// ErrorMessage returns the message reported by the service for err, falling
// back to the error string for failures that never reached the service.
func ErrorMessage(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
