// Package gitlab implements the REST API client: request construction from a
// call descriptor, authentication, the retry policy, and the pagination
// helper that backs the --all flag.
package gitlab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"gitlab-cli/internal/cliargs"
	"gitlab-cli/internal/config"
	"gitlab-cli/internal/httpclient"
	"gitlab-cli/internal/logging"
	"gitlab-cli/internal/registry"
	"gitlab-cli/internal/util"

	"github.com/tidwall/gjson"
)

// apiPrefix is the v4 REST API root appended to the configured endpoint when
// the endpoint does not already include it.
const apiPrefix = "/api/v4"

// ErrMissingToken is returned when no credential is configured.
var ErrMissingToken = errors.New("no private token configured (run 'configure' or set GITLAB_API_PRIVATE_TOKEN)")

// ErrMissingEndpoint is returned when no API endpoint is configured.
var ErrMissingEndpoint = errors.New("no API endpoint configured (run 'configure' or set GITLAB_API_ENDPOINT)")

// APIError is an error response reported by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server responded with %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server responded with %d", e.Status)
}

// sleepFunc allows mocking time.Sleep during tests.
type sleepFunc func(time.Duration)

// DefaultSleep is the sleep function used between retry attempts.
var DefaultSleep sleepFunc = time.Sleep

// Client issues calls against one GitLab instance.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
	authType   string
	retry      config.RetryConfig
	perPage    int
}

// NewClient validates the configuration and builds a client for it.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if cfg.PrivateToken == "" && cfg.AuthType != "ntlm" {
		return nil, ErrMissingToken
	}

	raw := strings.TrimRight(cfg.Endpoint, "/")
	if !strings.HasSuffix(raw, apiPrefix) {
		raw += apiPrefix
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL '%s': %w", cfg.Endpoint, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint URL '%s': scheme must be http or https", cfg.Endpoint)
	}

	return &Client{
		baseURL:    base,
		httpClient: httpclient.New(cfg),
		token:      cfg.PrivateToken,
		authType:   cfg.AuthType,
		retry:      cfg.Retry,
		perPage:    cfg.PerPage,
	}, nil
}

// Call executes the command bound to the descriptor and returns the raw
// response body.
func (c *Client) Call(ctx context.Context, cmd registry.Command, desc *cliargs.Descriptor) ([]byte, error) {
	req, err := c.newRequest(ctx, cmd, desc.Args, desc.Params)
	if err != nil {
		return nil, err
	}
	_, body, err := c.do(req)
	return body, err
}

// newRequest builds an authenticated request for the command. Parameters go
// to the query string for GET and DELETE and to a form-encoded body for
// everything else.
func (c *Client) newRequest(ctx context.Context, cmd registry.Command, args []string, params cliargs.Params) (*http.Request, error) {
	path, err := cmd.BindPath(args)
	if err != nil {
		return nil, err
	}

	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape bound path '%s': %w", path, err)
	}
	u := *c.baseURL
	// RawPath keeps escaped segment separators (namespaced project IDs like
	// "group%2Frepo") intact through URL.String().
	u.RawPath = strings.TrimRight(u.EscapedPath(), "/") + path
	u.Path = strings.TrimRight(u.Path, "/") + unescaped

	form := url.Values{}
	for key, value := range params {
		form.Set(key, value.Encode())
	}

	var bodyReader io.Reader
	switch cmd.HTTPMethod {
	case http.MethodGet, http.MethodDelete:
		u.RawQuery = form.Encode()
	default:
		if len(form) > 0 {
			bodyReader = strings.NewReader(form.Encode())
		}
	}

	req, err := http.NewRequestWithContext(ctx, cmd.HTTPMethod, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	switch c.authType {
	case "oauth2":
		// Bearer header is injected by the oauth2 transport.
	case "ntlm":
		// Negotiation happens in the transport; basic credentials seed it.
	default:
		req.Header.Set("PRIVATE-TOKEN", c.token)
	}
	return req, nil
}

// do sends the request, retrying retryable server errors with a fixed
// backoff, and maps error statuses to *APIError.
func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	maxAttempts := c.retry.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	backoff := time.Duration(c.retry.Backoff) * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if maxAttempts > 1 {
			logging.Logf(logging.Debug, "Request attempt %d/%d for %s %s", attempt, maxAttempts, req.Method, req.URL.String())
		}
		if req.GetBody != nil {
			newBody, err := req.GetBody()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to reset request body for retry: %w", err)
			}
			req.Body = newBody
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			logging.Logf(logging.Info, "Attempt %d failed: %v", attempt, err)
			if attempt < maxAttempts {
				logging.Logf(logging.Info, "Retrying in %v...", backoff)
				DefaultSleep(backoff)
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return resp, nil, fmt.Errorf("failed to read response body (status %d): %w", resp.StatusCode, readErr)
		}

		if c.isRetryable(resp.StatusCode) {
			lastErr = fmt.Errorf("received retryable status code %d", resp.StatusCode)
			logging.Logf(logging.Info, "Attempt %d failed: %v", attempt, lastErr)
			if attempt < maxAttempts {
				logging.Logf(logging.Info, "Retrying in %v...", backoff)
				DefaultSleep(backoff)
			}
			continue
		}

		logging.Logf(logging.Debug, "Response status %d, body snippet: %s", resp.StatusCode, util.Snippet(body))
		if resp.StatusCode >= 400 {
			return resp, body, &APIError{Status: resp.StatusCode, Message: extractErrorMessage(body)}
		}
		return resp, body, nil
	}
	return nil, nil, fmt.Errorf("request failed after %d attempt(s): %w", maxAttempts, lastErr)
}

func (c *Client) isRetryable(status int) bool {
	if status < 500 || status >= 600 {
		return false
	}
	for _, excluded := range c.retry.ExcludeErrors {
		if status == excluded {
			return false
		}
	}
	return true
}

// extractErrorMessage pulls a human-readable message out of a GitLab error
// body, which reports either {"message": ...} or {"error": "..."}.
func extractErrorMessage(body []byte) string {
	parsed := gjson.ParseBytes(body)
	if msg := parsed.Get("message"); msg.Exists() {
		return flattenMessage(msg)
	}
	if msg := parsed.Get("error"); msg.Exists() {
		return msg.String()
	}
	return ""
}

// flattenMessage renders the message field, which may be a string, an array,
// or a map of field names to error lists.
func flattenMessage(msg gjson.Result) string {
	switch {
	case msg.IsObject():
		var parts []string
		msg.ForEach(func(key, value gjson.Result) bool {
			parts = append(parts, fmt.Sprintf("%s: %s", key.String(), flattenMessage(value)))
			return true
		})
		sort.Strings(parts)
		return strings.Join(parts, "; ")
	case msg.IsArray():
		var parts []string
		for _, item := range msg.Array() {
			parts = append(parts, item.String())
		}
		return strings.Join(parts, ", ")
	default:
		return msg.String()
	}
}
