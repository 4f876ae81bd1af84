// Package apiclient is the single point of outbound HTTP traffic to the
// reservation backend. Ordinary HTTP failures never surface as Go errors;
// every call resolves to a uniform Response so callers branch on status,
// not on error types.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer token for the current request context
// and tears it down when the backend rejects it.
type TokenSource interface {
	Token(ctx context.Context) string
	Clear(ctx context.Context)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokens: tokens,
	}
}

// Response is the uniform result shape for every backend call.
// Status 0 means the request never got a response (network error).
type Response[T any] struct {
	Data   *T
	Err    string
	Status int
}

func (r Response[T]) OK() bool {
	return r.Err == "" && r.Status >= 200 && r.Status < 300
}

func (r Response[T]) Unauthorized() bool {
	return r.Status == http.StatusUnauthorized
}

func Get[T any](ctx context.Context, c *Client, endpoint string) Response[T] {
	return do[T](ctx, c, http.MethodGet, endpoint, nil)
}

func Post[T any](ctx context.Context, c *Client, endpoint string, body any) Response[T] {
	return do[T](ctx, c, http.MethodPost, endpoint, body)
}

func Put[T any](ctx context.Context, c *Client, endpoint string, body any) Response[T] {
	return do[T](ctx, c, http.MethodPut, endpoint, body)
}

func Delete[T any](ctx context.Context, c *Client, endpoint string) Response[T] {
	return do[T](ctx, c, http.MethodDelete, endpoint, nil)
}

func do[T any](ctx context.Context, c *Client, method, endpoint string, body any) Response[T] {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return Response[T]{Err: fmt.Sprintf("encode request: %v", err)}
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		return Response[T]{Err: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response[T]{Err: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response[T]{Err: fmt.Sprintf("read response: %v", err), Status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Session-wide policy: a rejected token is gone for good,
		// no matter which call tripped it.
		c.tokens.Clear(ctx)
	}

	if resp.StatusCode >= 400 {
		return Response[T]{Err: serverMessage(raw, resp.StatusCode), Status: resp.StatusCode}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return Response[T]{Status: resp.StatusCode}
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return Response[T]{Err: fmt.Sprintf("decode response: %v", err), Status: resp.StatusCode}
	}
	return Response[T]{Data: &data, Status: resp.StatusCode}
}

// serverMessage pulls the backend's error message out of the body when it
// has one, falling back to the plain status text.
func serverMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(status)
}
