// Package client talks to the game's local file API.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

var ErrRejected = errors.New("api rejected the file")

const unreachableHint = "check if the api server is enabled and your configuration is correct"

// UnreachableError is returned when the request never got an HTTP response.
type UnreachableError struct {
	URL string
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("failed to reach %s, %s: %v", e.URL, unreachableHint, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("api responded %s, %s", e.Status, unreachableHint)
	if e.Body != "" {
		msg += ": " + e.Body
	}

	return msg
}

type uploadRequest struct {
	Filename string `json:"filename"`
	Code     string `json:"code"`
}

type UploadData struct {
	RamUsage float64 `json:"ramUsage"`
}

type UploadResponse struct {
	Success bool        `json:"success"`
	Data    *UploadData `json:"data,omitempty"`
}

func (r *UploadResponse) RamUsage() float64 {
	if r == nil || r.Data == nil {
		return 0
	}

	return r.Data.RamUsage
}

type Client struct {
	url  string
	http *http.Client
}

// New returns a client posting to url with a bearer token. A nil base uses
// http.DefaultTransport. No client timeout is set.
func New(url, token string, base http.RoundTripper) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
				Base:   base,
			},
		},
	}
}

func (c *Client) Upload(ctx context.Context, filename, code string) (*UploadResponse, error) {
	body, err := json.Marshal(uploadRequest{
		Filename: filename,
		Code:     base64.StdEncoding.EncodeToString([]byte(code)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UnreachableError{URL: c.url, Err: err}
	}

	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   strings.TrimSpace(string(text)),
		}
	}

	var result UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Success {
		return &result, ErrRejected
	}

	return &result, nil
}
