package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/service/graph"
	"github.com/secmon-lab/ocelot/pkg/utils/httpclient"
	"github.com/urfave/cli/v3"
)

// Graph holds Microsoft Graph configuration: the identity credentials for
// the client-credentials grant plus the REST endpoints and hardening limits.
type Graph struct {
	ClientID        string
	ClientSecret    string
	TenantID        string
	BaseURL         string
	LoginURL        string
	Timeout         time.Duration
	MaxContentBytes int64
}

// Flags returns CLI flags for Graph configuration. The bare CLIENT_ID /
// CLIENT_SECRET / TENANT_ID variables are honored as fallback sources for
// compatibility with existing deployments.
func (g *Graph) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "graph-client-id",
			Usage:       "Application (client) ID for Graph access",
			Category:    "Graph",
			Sources:     cli.EnvVars("OCELOT_CLIENT_ID", "CLIENT_ID"),
			Destination: &g.ClientID,
		},
		&cli.StringFlag{
			Name:        "graph-client-secret",
			Usage:       "Client secret for Graph access",
			Category:    "Graph",
			Sources:     cli.EnvVars("OCELOT_CLIENT_SECRET", "CLIENT_SECRET"),
			Destination: &g.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "graph-tenant-id",
			Usage:       "Directory (tenant) ID",
			Category:    "Graph",
			Sources:     cli.EnvVars("OCELOT_TENANT_ID", "TENANT_ID"),
			Destination: &g.TenantID,
		},
		&cli.StringFlag{
			Name:        "graph-base-url",
			Usage:       "Graph REST base URL",
			Category:    "Graph",
			Value:       graph.DefaultBaseURL,
			Sources:     cli.EnvVars("OCELOT_GRAPH_BASE_URL"),
			Destination: &g.BaseURL,
		},
		&cli.StringFlag{
			Name:        "graph-login-url",
			Usage:       "Identity platform base URL for token acquisition",
			Category:    "Graph",
			Value:       graph.DefaultLoginURL,
			Sources:     cli.EnvVars("OCELOT_GRAPH_LOGIN_URL"),
			Destination: &g.LoginURL,
		},
		&cli.DurationFlag{
			Name:        "graph-timeout",
			Usage:       "Timeout for Graph API calls",
			Category:    "Graph",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("OCELOT_GRAPH_TIMEOUT"),
			Destination: &g.Timeout,
		},
		&cli.Int64Flag{
			Name:        "graph-max-content-size",
			Usage:       "Maximum image download size in bytes",
			Category:    "Graph",
			Value:       graph.DefaultMaxContentBytes,
			Sources:     cli.EnvVars("OCELOT_GRAPH_MAX_CONTENT_SIZE"),
			Destination: &g.MaxContentBytes,
		},
	}
}

// IsConfigured checks if the identity credentials are present
func (g *Graph) IsConfigured() bool {
	return g.ClientID != "" && g.ClientSecret != "" && g.TenantID != ""
}

// Configure creates the Graph client and its token source
func (g *Graph) Configure() (*graph.Client, *graph.TokenProvider, error) {
	if !g.IsConfigured() {
		return nil, nil, goerr.New("Graph credentials are required. Please provide client ID, client secret and tenant ID")
	}

	hc := httpclient.New(g.Timeout)

	client, err := graph.New(g.BaseURL,
		graph.WithHTTPClient(hc),
		graph.WithMaxContentBytes(g.MaxContentBytes),
	)
	if err != nil {
		return nil, nil, err
	}

	tokens := graph.NewTokenProvider(g.ClientID, g.ClientSecret, g.TenantID, g.LoginURL, hc)

	return client, tokens, nil
}

// LogValue returns structured log value. Secrets log as presence only.
func (g Graph) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_client_id", g.ClientID != ""),
		slog.Bool("has_client_secret", g.ClientSecret != ""),
		slog.Bool("has_tenant_id", g.TenantID != ""),
		slog.String("base_url", g.BaseURL),
		slog.String("login_url", g.LoginURL),
		slog.Duration("timeout", g.Timeout),
		slog.Int64("max_content_bytes", g.MaxContentBytes),
	)
}
