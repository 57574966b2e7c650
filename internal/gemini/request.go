// Package gemini builds and sends a single generateContent request to the
// Generative Language REST API, and reports what came back.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-2.0-flash-exp"
	DefaultPrompt   = "Hello! You are now using Gemini 2.0 Flash. Please confirm which model version you are and say hi in one sentence."
)

// Payload is the JSON body of a generateContent request, limited to the
// fields a text-only prompt needs.
type Payload struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// NewPayload wraps a single text prompt.
func NewPayload(prompt string) Payload {
	return Payload{Contents: []Content{{Parts: []Part{{Text: prompt}}}}}
}

// GenerateURL returns the generateContent URL for model under endpoint, with
// key as the query parameter.
func GenerateURL(endpoint, model, key string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(endpoint, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid endpoint %q: expect scheme://host[/path]", endpoint)
	}
	u = u.JoinPath("models", model+":generateContent")
	u.RawQuery = url.Values{"key": {key}}.Encode()
	return u.String(), nil
}

// NewRequest builds the POST request for prompt. The key travels in the
// query string; the only header set is Content-Type.
func NewRequest(ctx context.Context, endpoint, model, key, prompt string) (*http.Request, error) {
	u, err := GenerateURL(endpoint, model, key)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(NewPayload(prompt))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
