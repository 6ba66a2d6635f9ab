package twitchauth

import (
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

const defaultHTTPTimeout = 15 * time.Second

// ErrMissingAccessToken reports an identity endpoint response without a
// usable credential.
var ErrMissingAccessToken = errors.New("twitchauth: token response missing access_token")

// Token is the bearer credential presented on catalog API calls. Values are
// immutable; a refresh produces a new Token rather than mutating an old one.
type Token struct {
	AccessToken string
}

// IsZero reports whether the token carries no credential.
func (t Token) IsZero() bool {
	return strings.TrimSpace(t.AccessToken) == ""
}

// Client executes the OAuth2 client-credentials grant against the Twitch
// identity endpoint.
type Client struct {
	authURL string
	http    *http.Client
}

// NewClient creates an identity client for the given endpoint URL.
func NewClient(authURL string, httpClient *http.Client) (*Client, error) {
	authURL = strings.TrimSpace(authURL)
	if authURL == "" {
		return nil, errors.New("twitchauth: auth url required")
	}
	if _, err := url.Parse(authURL); err != nil {
		return nil, fmt.Errorf("twitchauth: parse auth url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{authURL: authURL, http: httpClient}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// RequestToken performs a single client-credentials grant. The secrets travel
// as query parameters and the request carries no body, matching the identity
// endpoint contract. No retries are performed at this layer.
func (c *Client) RequestToken(ctx context.Context, clientID, clientSecret string) (Token, error) {
	endpoint, err := url.Parse(c.authURL)
	if err != nil {
		return Token{}, fmt.Errorf("twitchauth: parse auth url: %w", err)
	}
	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("client_secret", clientSecret)
	params.Set("grant_type", "client_credentials")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return Token{}, fmt.Errorf("twitchauth: build token request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("twitchauth: token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Token{}, fmt.Errorf("twitchauth: token request failed (%s): %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Token{}, fmt.Errorf("twitchauth: decode token response: %w", err)
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return Token{}, ErrMissingAccessToken
	}

	return Token{AccessToken: payload.AccessToken}, nil
}
