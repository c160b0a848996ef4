// Package backend is the typed HTTP client for the upstream ticketing API.
// It owns the wire concerns: JSON bodies, default headers, bearer-token
// injection, and normalizing non-2xx responses into errors.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harshpatel5/Event-Ticket-System/internal/session"
)

// StatusError is a non-2xx upstream response. The body is carried along so
// handlers can surface the upstream's own error message.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded %s", e.Status)
}

// Message extracts the upstream's {"error": ...} message when there is one.
func (e *StatusError) Message() string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return e.Status
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Request issues one upstream call. A JSON content type is set by default and
// caller headers are merged in without clobbering it. The session's bearer
// token, when present, rides along as the Authorization header. Any non-2xx
// status becomes a *StatusError; an empty body is a nil-byte success, not a
// failure.
func (c *Client) Request(ctx context.Context, method, path string, sess session.Session, body any, headers http.Header) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       data,
		}
	}

	return data, nil
}

// get issues a GET and decodes the JSON body into out. An empty body leaves
// out untouched; it is the upstream's way of saying "no content".
func (c *Client) get(ctx context.Context, path string, sess session.Session, out any) error {
	data, err := c.Request(ctx, http.MethodGet, path, sess, nil, nil)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// send issues a mutating request, optionally decoding the response into out
// when out is non-nil and the body is non-empty.
func (c *Client) send(ctx context.Context, method, path string, sess session.Session, body, out any) error {
	data, err := c.Request(ctx, method, path, sess, body, nil)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
