package igdb

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

	"gamedex/internal/twitchauth"
)

const defaultHTTPTimeout = 15 * time.Second

// fieldSelection is the fixed selection clause prepended to every query. It
// requests exactly the fields the normalizer reads; apicalypse syntax is
// documented at https://api-docs.igdb.com/#examples.
const fieldSelection = "fields name, slug, first_release_date, " +
	"involved_companies.developer, involved_companies.company.name, " +
	"involved_companies.company.logo.url, url, cover.url, genres.name, " +
	"game_modes.name, storyline, summary, rating, platforms.name;"

// Client provides access to the IGDB games endpoint.
type Client struct {
	clientID   string
	apiURL     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an IGDB client.
func New(clientID, apiURL string, opts ...Option) (*Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, errors.New("igdb: client id required")
	}
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		return nil, errors.New("igdb: api url required")
	}
	if _, err := url.Parse(apiURL); err != nil {
		return nil, fmt.Errorf("igdb: parse api url: %w", err)
	}
	client := &Client{
		clientID:   clientID,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SlugClause builds the exact-match filter for a slug lookup. Exactly one
// row is requested: a slug identifies at most one record.
func SlugClause(slug string) string {
	return fmt.Sprintf("where slug = %q; limit 1;", slug)
}

// SearchClause builds the free-text search clause with the given result cap.
func SearchClause(text string, limit int) string {
	return fmt.Sprintf("search %q; limit %d;", text, limit)
}

// Query executes one catalog query with the supplied credential. The response
// must be a JSON array of records; anything else (including transport errors
// and non-2xx statuses) is a failure. Query performs no retries; the retry
// policy lives with the caller.
func (c *Client) Query(ctx context.Context, clause string, token twitchauth.Token) ([]Game, error) {
	body := fieldSelection + " " + clause
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("igdb: build query request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("igdb: query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("igdb: query failed (%s): %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var games []Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("igdb: decode catalog response: %w", err)
	}
	return games, nil
}
