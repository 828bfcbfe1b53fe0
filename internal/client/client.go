// Package client is the console's call layer for the three backend
// services. One method per backend operation; every failure comes back as
// an *APIError with a message fit for display, whether it originated as an
// HTTP error payload or a transport failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type APIError struct {
	// Status is the HTTP status code, or 0 when the service was unreachable.
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	userURL     string
	songURL     string
	playlistURL string
	http        *http.Client
}

func New(userURL, songURL, playlistURL string) *Client {
	return &Client{
		userURL:     userURL,
		songURL:     songURL,
		playlistURL: playlistURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do issues one request and decodes either the success payload into out or
// the canonical {"error": "..."} body into an *APIError.
func (c *Client) do(ctx context.Context, method, url, bearer string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return &APIError{Message: fmt.Sprintf("encode request: %v", err)}
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("service unreachable: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
			payload.Error = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}
