package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/secmon-lab/ocelot/pkg/utils/httpclient"
)

// DefaultTimeout bounds one classification call end to end
const DefaultTimeout = 30 * time.Second

// Client calls the external classification gateway: one authenticated POST
// of {comentario, imagen} per invocation, no retries. Failures here are
// fatal to the invocation; the orchestrator never recovers them.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a classifier client. Endpoint and API key are injected
// configuration; there are no built-in defaults for either.
func New(endpoint, apiKey string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, goerr.New("classifier endpoint is required")
	}
	if apiKey == "" {
		return nil, goerr.New("classifier API key is required")
	}

	client := &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpclient.New(DefaultTimeout),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Classify sends the encoded image with its comment to the gateway and
// returns the response object as-is. The image bytes are never logged.
func (c *Client) Classify(ctx context.Context, comment string, image model.EncodedImage) (model.ClassificationResponse, error) {
	payload, err := json.Marshal(model.ClassificationRequest{
		Comment: comment,
		Image:   image,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode classification request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build classification request")
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "classification request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, goerr.New("classification gateway returned an error",
			goerr.V("status", resp.StatusCode))
	}

	var result model.ClassificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode classification response")
	}

	return result, nil
}
