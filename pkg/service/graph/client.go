package graph

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/secmon-lab/ocelot/pkg/utils/httpclient"
)

const (
	// DefaultBaseURL is the versioned Graph REST base path
	DefaultBaseURL = "https://graph.microsoft.com/v1.0"

	// DefaultMaxContentBytes caps image downloads at 20 MiB
	DefaultMaxContentBytes = 20 << 20
)

// Client talks to the Graph REST API: message reads, hostedContents
// downloads and thread replies. It holds no per-invocation state; the bearer
// token is passed into every call.
type Client struct {
	baseURL         *url.URL
	httpClient      *http.Client
	maxContentBytes int64
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxContentBytes changes the image download size cap
func WithMaxContentBytes(n int64) Option {
	return func(c *Client) {
		c.maxContentBytes = n
	}
}

// New creates a Graph client. baseURL may be empty to use the public
// endpoint.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid Graph base URL", goerr.V("baseURL", baseURL))
	}

	client := &Client{
		baseURL:         u,
		httpClient:      httpclient.New(30 * time.Second),
		maxContentBytes: DefaultMaxContentBytes,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// messageURL builds the resource URL of a message under base
func messageURL(base *url.URL, ref model.MessageRef) string {
	return fmt.Sprintf("%s/teams/%s/channels/%s/messages/%s",
		strings.TrimRight(base.String(), "/"),
		url.PathEscape(ref.TeamID.String()),
		url.PathEscape(ref.ChannelID.String()),
		url.PathEscape(ref.MessageID.String()),
	)
}

// GetMessageContent returns the rendered HTML body of a message
func (c *Client) GetMessageContent(ctx context.Context, token string, ref model.MessageRef) (string, error) {
	data, err := c.get(ctx, token, messageURL(c.baseURL, ref))
	if err != nil {
		return "", goerr.Wrap(err, "failed to get message")
	}

	var msg struct {
		Body struct {
			Content string `json:"content"`
		} `json:"body"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return "", goerr.Wrap(err, "failed to parse message response")
	}

	return msg.Body.Content, nil
}

// ListHostedContents returns the hostedContents entry IDs of a message in
// list order. An empty slice means the message has no structured attachment.
func (c *Client) ListHostedContents(ctx context.Context, token string, ref model.MessageRef) ([]string, error) {
	data, err := c.get(ctx, token, messageURL(c.baseURL, ref)+"/hostedContents")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list hostedContents")
	}

	var list struct {
		Value []struct {
			ID string `json:"id"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, goerr.Wrap(err, "failed to parse hostedContents response")
	}

	ids := make([]string, 0, len(list.Value))
	for _, v := range list.Value {
		ids = append(ids, v.ID)
	}
	return ids, nil
}

// FetchImage retrieves the bytes behind an AttachmentRef and returns them
// base64-encoded. For inline references the bearer token is attached only
// when the URL points at the Graph host itself; it must never reach a
// third-party host.
func (c *Client) FetchImage(ctx context.Context, token string, ref model.MessageRef, att model.AttachmentRef) (model.EncodedImage, error) {
	var (
		data []byte
		err  error
	)

	switch att.Kind {
	case model.AttachmentHosted:
		target := fmt.Sprintf("%s/hostedContents/%s/$value",
			messageURL(c.baseURL, ref), url.PathEscape(att.ContentID))
		data, err = c.get(ctx, token, target)

	case model.AttachmentInline:
		data, err = c.download(ctx, token, att.URL)

	default:
		return "", goerr.New("unknown attachment kind", goerr.V("kind", att.Kind), goerr.T(model.ErrTagResolve))
	}

	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch image content",
			goerr.V("kind", att.Kind.String()),
			goerr.T(model.ErrTagResolve))
	}

	return model.EncodedImage(base64.StdEncoding.EncodeToString(data)), nil
}

// PostReply posts a text reply into the message's thread. Best-effort: the
// outcome is logged and returned as a status, never as an error.
func (c *Client) PostReply(ctx context.Context, token string, ref model.MessageRef, text string) model.ReplyStatus {
	logger := ctxlog.From(ctx)

	payload := map[string]any{
		"body": map[string]any{
			"content": text,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("Failed to encode reply payload", "error", err)
		return model.ReplyFailed
	}

	target := messageURL(c.baseURL, ref) + "/replies"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		logger.Warn("Failed to build reply request", "error", err)
		return model.ReplyFailed
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Failed to post thread reply", "error", err, "messageID", ref.MessageID)
		return model.ReplyFailed
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Thread reply rejected by backend",
			"status", resp.StatusCode,
			"messageID", ref.MessageID,
		)
		return model.ReplyFailed
	}

	logger.Info("Posted thread reply",
		"status", resp.StatusCode,
		"messageID", ref.MessageID,
	)
	return model.ReplyPosted
}

// get issues an authenticated GET against a Graph endpoint
func (c *Client) get(ctx context.Context, token, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", target))
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req)
}

// download issues a GET against a resolved inline URL. The bearer token is
// attached only when the host matches the Graph base host.
func (c *Client) download(ctx context.Context, token, target string) ([]byte, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid image URL", goerr.V("url", target))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", target))
	}
	if u.Host == c.baseURL.Host {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request to backend failed", goerr.V("url", req.URL.String()))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, goerr.New("unexpected status from backend",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", req.URL.String()))
	}

	limited := io.LimitReader(resp.Body, c.maxContentBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", req.URL.String()))
	}
	if int64(len(data)) > c.maxContentBytes {
		return nil, goerr.New("response exceeds size limit",
			goerr.V("limit", c.maxContentBytes),
			goerr.V("url", req.URL.String()))
	}

	return data, nil
}
