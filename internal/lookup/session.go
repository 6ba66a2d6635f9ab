package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gamedex/internal/config"
	"gamedex/internal/igdb"
	"gamedex/internal/logging"
	"gamedex/internal/twitchauth"
)

// TokenStore abstracts persistence for the cached bearer credential.
type TokenStore interface {
	Load() (twitchauth.Token, bool, error)
	Save(twitchauth.Token) error
}

// Session owns the current credential and runs the lookup flow for one
// invocation. The credential is an immutable value replaced wholesale on
// refresh. A Session is not safe for concurrent use.
type Session struct {
	clientID     string
	clientSecret string
	searchLimit  int

	api    *igdb.Client
	auth   *twitchauth.Client
	store  TokenStore
	logger *slog.Logger

	token twitchauth.Token
}

// Option customises Session construction.
type Option func(*Session)

// WithAPIClient injects a prebuilt catalog client.
func WithAPIClient(client *igdb.Client) Option {
	return func(s *Session) {
		s.api = client
	}
}

// WithAuthClient injects a prebuilt identity client.
func WithAuthClient(client *twitchauth.Client) Option {
	return func(s *Session) {
		s.auth = client
	}
}

// WithTokenStore injects a custom persistence layer.
func WithTokenStore(store TokenStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// NewSession builds a Session from configuration.
func NewSession(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("lookup: config is nil")
	}

	s := &Session{
		clientID:     cfg.IGDB.ClientID,
		clientSecret: cfg.IGDB.ClientSecret,
		searchLimit:  cfg.IGDB.SearchLimit,
		logger:       logging.NewComponentLogger(logger, "lookup"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.api == nil {
		api, err := igdb.New(cfg.IGDB.ClientID, cfg.IGDB.APIURL)
		if err != nil {
			return nil, err
		}
		s.api = api
	}
	if s.auth == nil {
		auth, err := twitchauth.NewClient(cfg.IGDB.AuthURL, nil)
		if err != nil {
			return nil, err
		}
		s.auth = auth
	}
	if s.store == nil {
		s.store = twitchauth.NewFileStore(cfg.Paths.TokenCache)
	}
	if s.searchLimit <= 0 {
		s.searchLimit = 15
	}
	return s, nil
}

// Find resolves raw user input to catalog candidates: an exact slug lookup
// first, then a free-text search when the slug matches nothing. Zero records
// from both stages surfaces ErrNoResults.
func (s *Session) Find(ctx context.Context, raw string) ([]igdb.Game, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, Wrap(ErrInputAborted, "lookup", "find", "no search text entered", nil)
	}
	if err := s.ensureToken(ctx); err != nil {
		return nil, err
	}

	query := ResolveQuery(raw)
	s.logger.Debug("resolved query",
		logging.String("slug", query.Slug),
		logging.String("free_text", query.FreeText))

	games, err := s.query(ctx, igdb.SlugClause(query.Slug))
	if err != nil {
		return nil, err
	}
	if len(games) > 0 {
		return games, nil
	}

	s.logger.Debug("slug lookup empty; falling back to free-text search",
		logging.String("slug", query.Slug))
	games, err = s.query(ctx, igdb.SearchClause(query.FreeText, s.searchLimit))
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, Wrap(ErrNoResults, "lookup", "find", fmt.Sprintf("no catalog records match %q", raw), nil)
	}
	return games, nil
}

// Refresh forces a credential mint and persists the result, replacing any
// cached value.
func (s *Session) Refresh(ctx context.Context) error {
	return s.refreshToken(ctx)
}

// ensureToken makes the session hold a credential: the cached one when
// present, a freshly minted one otherwise. No identity call happens when the
// cache is populated.
func (s *Session) ensureToken(ctx context.Context) error {
	if !s.token.IsZero() {
		return nil
	}
	token, found, err := s.store.Load()
	if err != nil {
		return Wrap(ErrAuth, "lookup", "load credential", "", err)
	}
	if found {
		s.token = token
		return nil
	}
	return s.refreshToken(ctx)
}

func (s *Session) refreshToken(ctx context.Context) error {
	token, err := s.auth.RequestToken(ctx, s.clientID, s.clientSecret)
	if err != nil {
		return Wrap(ErrAuth, "lookup", "refresh credential", "", err)
	}
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	s.token = token
	s.logger.Info("minted fresh credential",
		logging.String(logging.FieldEventType, "credential_refreshed"))
	return nil
}

// query runs the bounded two-attempt scheme: one attempt with the current
// credential, then on any failure exactly one refresh and one retry. A
// second failure is terminal.
func (s *Session) query(ctx context.Context, clause string) ([]igdb.Game, error) {
	games, err := s.api.Query(ctx, clause, s.token)
	if err == nil {
		return games, nil
	}

	s.logger.Warn("catalog query failed; refreshing credential",
		logging.String(logging.FieldEventType, "catalog_query_failed"),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "credential may be stale"))
	if err := s.refreshToken(ctx); err != nil {
		return nil, err
	}

	games, err = s.api.Query(ctx, clause, s.token)
	if err != nil {
		return nil, Wrap(ErrAPI, "lookup", "query", "retry after credential refresh failed", err)
	}
	return games, nil
}
