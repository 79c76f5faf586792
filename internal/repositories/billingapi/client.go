// Package billingapi reads and appends payment history through the external Billing REST API.
package billingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"golang.org/x/oauth2"
)

// maxErrorBody bounds how much of a failed response is kept in the error message.
const maxErrorBody = 512

// Config configures the Billing API client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the Billing API. It implements both history store ports.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient builds a client that sends cfg.Token as a bearer token on every request.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("billing api base url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid billing api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid billing api base url scheme %q", base.Scheme)
	}

	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = cfg.Timeout

	return &Client{baseURL: base, httpClient: httpClient}, nil
}

// endpoint joins path segments onto the base URL, escaping each one.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := *c.baseURL
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u.Path = c.baseURL.Path + "/" + strings.Join(escaped, "/")
	u.RawPath = c.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends one request and decodes a 2xx JSON body into out (when non-nil).
// conflict is the error returned for a 409 response.
func (c *Client) do(ctx context.Context, method, target string, body, out any, conflict error) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode billing api request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build billing api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewRemoteError("billing api request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, conflict)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewRemoteError("failed to decode billing api response", err)
	}
	return nil
}

func statusError(resp *http.Response, conflict error) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := remoteMessage(raw)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", conflict, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: billing api rejected request: %s", apperrors.ErrValidation, msg)
	}
	return apperrors.NewRemoteError(
		fmt.Sprintf("billing api returned %d", resp.StatusCode),
		errors.New(msg),
	)
}

// remoteMessage prefers the "error" field of a JSON error body and falls back to the raw text.
func remoteMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return body.Error
	}
	if s := strings.TrimSpace(string(raw)); s != "" {
		return s
	}
	return "no response body"
}
