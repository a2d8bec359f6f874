package httpclient

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"gitlab-cli/internal/config"
	"gitlab-cli/internal/logging"

	"github.com/Azure/go-ntlmssp"
	"golang.org/x/oauth2"
)

// New creates an *http.Client for the configured authentication mode.
// private_token needs no transport support (the header is set per request);
// oauth2 wraps the transport with a bearer token source; ntlm wraps it with
// the challenge/response negotiator for instances behind IIS reverse proxies.
func New(cfg *config.Config) *http.Client {
	baseTransport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.TLSSkipVerify,
		},
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if cfg.TLSSkipVerify {
		logging.Logf(logging.Warn, "TLS certificate verification is DISABLED for endpoint: %s", cfg.Endpoint)
	}

	timeout := time.Duration(cfg.HTTPTimeout) * time.Second

	switch cfg.AuthType {
	case "oauth2":
		logging.Logf(logging.Debug, "Configuring OAuth2 bearer transport for endpoint: %s", cfg.Endpoint)
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.PrivateToken})
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
			Transport: baseTransport,
			Timeout:   timeout,
		})
		client := oauth2.NewClient(ctx, src)
		client.Timeout = timeout
		return client

	case "ntlm":
		logging.Logf(logging.Debug, "Configuring NTLM transport for endpoint: %s", cfg.Endpoint)
		return &http.Client{
			Transport: ntlmssp.Negotiator{RoundTripper: baseTransport},
			Timeout:   timeout,
		}

	default:
		return &http.Client{
			Transport: baseTransport,
			Timeout:   timeout,
		}
	}
}
