// Package session holds the authenticated operator's identity and bearer
// token. The store is an app-lifetime singleton: rehydrated from durable
// storage at startup, persisted on every change, and cleared on logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/logging"
	"github.com/dmitrijs2005/postill/internal/models"
	"github.com/dmitrijs2005/postill/internal/storage"
)

// API is the slice of the API client the session store needs.
type API interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	SetToken(token string)
	ClearToken()
}

// Store is the session state holder. All presentation code reads the current
// user through it and subscribes for change notifications.
type Store struct {
	api  API
	repo storage.Repository
	log  logging.Logger

	user *models.User
	subs []func()
}

func NewStore(api API, repo storage.Repository, log logging.Logger) *Store {
	return &Store{api: api, repo: repo, log: log}
}

// Subscribe registers fn to be called after every session state change.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// Restore rehydrates the session from the durable slot. A missing slot means
// a fresh unauthenticated start; a malformed slot is discarded so the app
// never crashes on stale state.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, storage.KeyUser)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn(ctx, "discarding malformed persisted session", "error", err)
		if derr := s.repo.Delete(ctx, storage.KeyUser, storage.KeyToken); derr != nil {
			return fmt.Errorf("failed to discard malformed session: %w", derr)
		}
		return nil
	}

	s.user = &user
	s.api.SetToken(user.Token)
	s.notify()
	return nil
}

// Login exchanges credentials for a token and profile, persists both, and
// switches the app into the authenticated state. On failure the existing
// session state is left untouched.
func (s *Store) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.repo.Put(ctx, storage.KeyUser, raw); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.repo.Put(ctx, storage.KeyToken, []byte(user.Token)); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	s.user = &user
	s.api.SetToken(user.Token)
	s.notify()
	return s.user, nil
}

// Logout unconditionally clears the persisted session and cart slots and
// resets the in-memory state.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, storage.KeyToken, storage.KeyUser, storage.KeyCart); err != nil {
		return fmt.Errorf("failed to clear persisted state: %w", err)
	}

	s.user = nil
	s.api.ClearToken()
	s.notify()
	return nil
}

// Current returns the logged-in operator, or nil.
func (s *Store) Current() *models.User {
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	return s.user != nil
}

// TokenExpiry inspects the bearer token's claims without verifying the
// signature (verification belongs to the server) and reports when it
// expires. ok is false when there is no session, the token is not a JWT,
// or it carries no expiry claim.
func (s *Store) TokenExpiry() (expiry time.Time, ok bool) {
	if s.user == nil || s.user.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.user.Token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
