package apisdk

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every backend call unless HTTPClient is replaced.
const DefaultTimeout = 10 * time.Second

// Client is a client for the AlloColis backend.
// It provides access to unauthenticated operations and can derive an
// Authorized client for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new backend client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Authorized returns a client whose calls carry the bearer token produced by
// tokens at the moment each request is sent.
func (c *Client) Authorized(tokens TokenSource) *Authorized {
	return &Authorized{client: c, tokens: tokens}
}
