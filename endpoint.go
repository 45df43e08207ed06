package compendium

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// endpoint wraps a single API base URL and performs GET requests against
// it. Two endpoints may exist per client: primary and master mode.
type endpoint struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

func newEndpoint(baseURL string, httpClient *http.Client, userAgent string, logger zerolog.Logger) *endpoint {
	return &endpoint{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// request performs a GET against baseURL + path and returns the payload
// of the API's {"data": ...} envelope. A non-200 status or an empty
// payload yields (nil, nil) so callers can treat it as "absent".
// Transport and decode failures propagate to the caller.
func (e *endpoint) request(ctx context.Context, path string) (json.RawMessage, error) {
	url := e.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	e.logger.Debug().Str("url", url).Msg("Making compendium API request")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.logger.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("Non-success status, treating as empty result")
		return nil, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if emptyPayload(envelope.Data) {
		return nil, nil
	}
	return envelope.Data, nil
}

// download performs a GET against an absolute URL and returns the raw
// response body. Unlike request, a non-success status is an error here.
func (e *endpoint) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	e.logger.Debug().Str("url", url).Msg("Downloading entry image")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed with status %d", resp.StatusCode)
	}

	return body, nil
}

// emptyPayload reports whether a data payload counts as absent: missing,
// null, or an empty object or list.
func emptyPayload(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "{}", "[]":
		return true
	}
	return false
}
