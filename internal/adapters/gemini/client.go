package gemini

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
)

// maxResponseBytes caps how much of an upstream body is read
const maxResponseBytes = 64 << 20

// Client represents the generative language API client
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a new client. A zero timeout leaves the call unbounded.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	return NewClientWithHTTPClient(baseURL, model, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient creates a new client around an existing http.Client
func NewClientWithHTTPClient(baseURL, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
	}
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends one generateContent call for prompt.
// It returns the decoded response together with the raw body.
func (c *Client) GenerateContent(ctx context.Context, apiKey, prompt string) (*GenerateContentResponse, []byte, error) {
	payload, err := json.Marshal(NewImageRequest(prompt))
	if err != nil {
		return nil, nil, NewUpstreamError("encode", 0, "", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(payload))
	if err != nil {
		return nil, nil, NewUpstreamError("build", 0, "", c.redact(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, NewUpstreamError("send", 0, "", c.redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, NewUpstreamError("read", resp.StatusCode, "", c.redact(err))
	}

	if resp.StatusCode/100 != 2 {
		return nil, body, NewUpstreamError("generateContent", resp.StatusCode, string(body), ErrUnexpectedStatus)
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, body, NewUpstreamError("decode", resp.StatusCode, string(body), fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}

	return &result, body, nil
}

// CloseIdleConnections releases pooled connections
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) endpoint(apiKey string) string {
	u := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	if apiKey == "" {
		return u
	}
	return u + "?" + url.Values{"key": []string{apiKey}}.Encode()
}

// redact strips the key-bearing URL from transport errors
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: c.endpoint(""), Err: urlErr.Err}
	}
	return err
}
