// Package qlik is a stateless client for the Qlik Cloud REST API surface
// this tool needs: app lookup, script fetch/publish/validate, reload
// orchestration and publish-to-managed-space.
package qlik

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qlikctl/qlikctl/internal/appconfig"
	"pkt.systems/pslog"
)

const maxResponseBytes = 16 << 20

// Client talks to one Qlik Cloud tenant with a bearer credential. It holds
// no mutable state; methods are safe to call in any order.
type Client struct {
	httpClient *http.Client
	base       *url.URL
	apiKey     string
	log        pslog.Logger
}

// New builds a client from the loaded configuration. The tenant URL must
// include scheme and host and may carry a path prefix (e.g. /api/v1).
func New(cfg appconfig.Config, logger pslog.Logger) (*Client, error) {
	if err := cfg.ValidateRemote(); err != nil {
		return nil, err
	}
	base, err := url.Parse(strings.TrimRight(cfg.TenantURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("tenant_url: %w", err)
	}
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second},
		base:       base,
		apiKey:     cfg.APIKey,
		log:        logger,
	}, nil
}

// do performs one API request. Non-2xx responses become a RemoteError with
// the status and body; transport errors propagate as-is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := *c.base
	u.Path = c.base.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	c.log.Debug("qlik api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.decode(path, data, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return c.decode(path, data, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return c.decode(path, data, out)
}

func (c *Client) decode(path string, data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}
