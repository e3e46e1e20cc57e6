// Package session is the single authority for who is logged in. It derives
// its state from the durable credential slot plus one identity fetch per
// application load, and never persists anything itself.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/futdash/futdash/internal/credential"
	"github.com/futdash/futdash/internal/dispatch"
	"github.com/futdash/futdash/internal/notify"
)

// Identity is the authenticated user's profile, immutable for the lifetime
// of a session.
type Identity struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FavoriteTeam string `json:"team_favorite"`
}

// AuthError is the single error type surfaced by Login and Register. The
// message is backend-provided when available, generic otherwise, and is
// meant for inline display at the point of the failing action.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Store owns the in-memory session state.
type Store struct {
	creds    *credential.Store
	api      *dispatch.Dispatcher
	notifier notify.Notifier
	logger   *slog.Logger

	identity *Identity
	loading  bool
}

// NewStore creates a session Store and registers it as the dispatcher's
// invalidation hook, so a 401 on any call tears the session down.
func NewStore(creds *credential.Store, api *dispatch.Dispatcher, notifier notify.Notifier, logger *slog.Logger) *Store {
	s := &Store{
		creds:    creds,
		api:      api,
		notifier: notifier,
		logger:   logger,
	}
	api.SetInvalidateHook(s.drop)
	return s
}

// Identity returns the authenticated profile, or nil when logged out.
func (s *Store) Identity() *Identity {
	return s.identity
}

// IsAuthenticated reports whether an identity is established.
func (s *Store) IsAuthenticated() bool {
	return s.identity != nil
}

// IsLoading reports whether identity resolution is still in flight.
// Consumers gate authenticated rendering on this flag.
func (s *Store) IsLoading() bool {
	return s.loading
}

// Initialize reconstructs the session from the credential slot. With no
// stored credential it settles immediately without any network call. With
// one, it resolves the identity; any failure discards the credential and
// leaves the session logged out. Runs once per application load.
func (s *Store) Initialize(ctx context.Context) {
	cred, err := s.creds.Load()
	if err != nil {
		s.logger.Warn("could not read stored credential", "error", err)
		s.loading = false
		return
	}
	if cred == nil {
		s.loading = false
		return
	}

	s.loading = true
	s.resolveIdentity(ctx)
	s.loading = false
}

// Login exchanges username and password for a credential, persists it with
// the advisory expiry window, and resolves the identity. On rejection the
// session is left unchanged and the backend message is surfaced.
func (s *Store) Login(ctx context.Context, username, password string) error {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := s.api.Post(ctx, "/users/login", body, &token); err != nil {
		return &AuthError{Message: dispatch.Detail(err, "unable to log in")}
	}

	if _, err := s.creds.Save(token.AccessToken); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}

	s.loading = true
	s.resolveIdentity(ctx)
	s.loading = false
	return nil
}

// Register creates a new account and, on success, immediately logs in with
// the same username and password; registration alone does not authenticate.
func (s *Store) Register(ctx context.Context, username, email, password, favoriteTeam string) error {
	body := map[string]string{
		"username":      username,
		"email":         email,
		"password":      password,
		"team_favorite": favoriteTeam,
	}

	if err := s.api.Post(ctx, "/users/signup", body, nil); err != nil {
		return &AuthError{Message: dispatch.Detail(err, "unable to register")}
	}

	return s.Login(ctx, username, password)
}

// Logout discards the credential and resets the session. Idempotent: with
// no active session it only emits the confirmation notice.
func (s *Store) Logout() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Error("failed to clear credential on logout", "error", err)
	}
	s.identity = nil
	s.notifier.Info("you have been signed out")
}

// resolveIdentity fetches /users/me and populates the identity. On any
// failure the credential is discarded so the session can never claim an
// identity without a credential backing it.
func (s *Store) resolveIdentity(ctx context.Context) {
	var id Identity
	if err := s.api.Get(ctx, "/users/me", &id); err != nil {
		s.logger.Warn("identity resolution failed", "error", err)
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.logger.Error("failed to discard credential", "error", clearErr)
		}
		s.identity = nil
		return
	}
	s.identity = &id
}

// drop resets the in-memory identity after the dispatcher has cleared the
// credential slot on a 401.
func (s *Store) drop() {
	s.identity = nil
}
