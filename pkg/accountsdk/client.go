package accountsdk

import (
	"net/http"
	"strings"
	"time"
)

// DefaultAPIPrefix is where the service mounts its API routes.
const DefaultAPIPrefix = "/api/v1"

// Client talks to the accounts service. It covers the unauthenticated
// operations and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	APIPrefix  string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		APIPrefix: DefaultAPIPrefix,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSessionFromTokens creates a session from tokens obtained earlier.
func (c *Client) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}
