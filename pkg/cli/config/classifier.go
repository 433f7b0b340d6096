package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/service/classifier"
	"github.com/secmon-lab/ocelot/pkg/utils/httpclient"
	"github.com/urfave/cli/v3"
)

// Classifier holds classification gateway configuration. Both the endpoint
// and the API key are deployment secrets and must come from configuration,
// never from constants.
type Classifier struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Flags returns CLI flags for Classifier configuration
func (c *Classifier) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "classifier-endpoint",
			Usage:       "Classification gateway endpoint URL",
			Category:    "Classifier",
			Sources:     cli.EnvVars("OCELOT_CLASSIFIER_ENDPOINT"),
			Destination: &c.Endpoint,
		},
		&cli.StringFlag{
			Name:        "classifier-api-key",
			Usage:       "API key for the classification gateway",
			Category:    "Classifier",
			Sources:     cli.EnvVars("OCELOT_CLASSIFIER_API_KEY"),
			Destination: &c.APIKey,
		},
		&cli.DurationFlag{
			Name:        "classifier-timeout",
			Usage:       "Timeout for classification calls",
			Category:    "Classifier",
			Value:       classifier.DefaultTimeout,
			Sources:     cli.EnvVars("OCELOT_CLASSIFIER_TIMEOUT"),
			Destination: &c.Timeout,
		},
	}
}

// IsConfigured checks if the gateway is properly configured
func (c *Classifier) IsConfigured() bool {
	return c.Endpoint != "" && c.APIKey != ""
}

// Configure creates the classification gateway client
func (c *Classifier) Configure() (*classifier.Client, error) {
	if !c.IsConfigured() {
		return nil, goerr.New("classifier configuration is required. Please provide endpoint and API key")
	}

	return classifier.New(c.Endpoint, c.APIKey,
		classifier.WithHTTPClient(httpclient.New(c.Timeout)),
	)
}

// LogValue returns structured log value. The API key logs as presence only.
func (c Classifier) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.Bool("has_api_key", c.APIKey != ""),
		slog.Duration("timeout", c.Timeout),
	)
}
