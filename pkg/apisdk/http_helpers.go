package apisdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// jsonBody encodes v as a request body. A nil v means no body.
func jsonBody(v any) (io.Reader, map[string]string, error) {
	if v == nil {
		return nil, nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(raw), map[string]string{"Content-Type": "application/json"}, nil
}

// doRequest performs an HTTP request with the Client's HTTP client.
// This is for unauthenticated requests (no Authorization header).
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return resp, nil
}

// doJSON sends v as JSON and decodes the response into target.
func (c *Client) doJSON(ctx context.Context, method, path string, v, target any) error {
	body, headers, err := jsonBody(v)
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, method, path, body, headers)
	if err != nil {
		return err
	}

	return decodeJSON(resp, target)
}

// doAuthRequest performs an HTTP request carrying the bearer token that the
// TokenSource hands out at this moment.
func (a *Authorized) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	h := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		h[k] = v
	}
	h["Authorization"] = "Bearer " + token

	return a.client.doRequest(ctx, method, path, body, h)
}

// doAuthJSON is doJSON for authenticated calls.
func (a *Authorized) doAuthJSON(ctx context.Context, method, path string, v, target any) error {
	body, headers, err := jsonBody(v)
	if err != nil {
		return err
	}

	resp, err := a.doAuthRequest(ctx, method, path, body, headers)
	if err != nil {
		return err
	}

	return decodeJSON(resp, target)
}

// decodeJSON decodes a JSON response into target. Any 2xx status counts as
// success; a nil target or an empty body skips decoding.
// Returns a typed *APIError if the response indicates an error.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	if err := parseErrorResponse(resp, bodyBytes); err != nil {
		return err
	}

	if target == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return nil
}
