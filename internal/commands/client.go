package commands

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"
)

// newHTTPClient creates an HTTP client honoring the --proxy flag. Every
// request it sends carries key as the "key" query parameter.
func newHTTPClient(cmd *cobra.Command, key string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &keyRoundTripper{
			APIKey:   key,
			ProxyURL: mustGetStringFlag(cmd, "proxy"),
		},
	}
}

// newGenaiClient creates a new genai.Client given the configuration of
// cmd flags (for API key, proxy selection, etc.)
func newGenaiClient(ctx context.Context, cmd *cobra.Command) (*genai.Client, error) {
	key := mustResolveKey(cmd)

	var clientOpts []option.ClientOption
	if proxyURL := mustGetStringFlag(cmd, "proxy"); len(proxyURL) > 0 {
		clientOpts = append(clientOpts, option.WithHTTPClient(newHTTPClient(cmd, key.Value, 0)))
	} else {
		clientOpts = append(clientOpts, option.WithAPIKey(key.Value))
	}

	return genai.NewClient(ctx, clientOpts...)
}

type keyRoundTripper struct {
	// APIKey is the API Key to set on requests.
	APIKey string

	// ProxyURL is the URL of the proxy server. If empty, no proxy is used.
	ProxyURL string
}

func (t *keyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if t.ProxyURL != "" {
		proxyURL, err := url.Parse(t.ProxyURL)
		if err != nil {
			return nil, err
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	newReq := req.Clone(req.Context())
	vals := newReq.URL.Query()
	vals.Set("key", t.APIKey)
	newReq.URL.RawQuery = vals.Encode()

	return transport.RoundTrip(newReq)
}
