package graph

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// DefaultLoginURL is the Microsoft identity platform endpoint
	DefaultLoginURL = "https://login.microsoftonline.com"

	// graphScope requests all application permissions granted to the client
	graphScope = "https://graph.microsoft.com/.default"
)

// TokenProvider acquires Graph bearer tokens via the OAuth2
// client-credentials grant. Every AcquireToken call performs a fresh
// exchange; tokens are never cached across invocations.
type TokenProvider struct {
	conf       *clientcredentials.Config
	httpClient *http.Client
}

// NewTokenProvider creates a TokenProvider for the given tenant. loginURL
// may be empty to use the public Microsoft endpoint. httpClient may be nil
// to use the oauth2 default client.
func NewTokenProvider(clientID, clientSecret, tenantID, loginURL string, httpClient *http.Client) *TokenProvider {
	if loginURL == "" {
		loginURL = DefaultLoginURL
	}

	return &TokenProvider{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimRight(loginURL, "/"), tenantID),
			Scopes:       []string{graphScope},
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: httpClient,
	}
}

// AcquireToken exchanges the client credentials for a bearer token
func (p *TokenProvider) AcquireToken(ctx context.Context) (string, error) {
	if p.conf.ClientID == "" || p.conf.ClientSecret == "" {
		return "", goerr.New("client credentials are not configured")
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	tok, err := p.conf.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to acquire token from identity endpoint")
	}

	return tok.AccessToken, nil
}
