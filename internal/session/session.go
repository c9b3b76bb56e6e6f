// Package session owns the authenticated identity and bearer token. The
// store is injected wherever requests go out; the HTTP transport consults it
// per request instead of anything mutating shared default headers.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"slambook/internal/logging"
	"slambook/internal/models"
	"slambook/internal/store"
)

// Persisted state keys in the local kv store.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// Store holds the session state: anonymous (no user, no token) or
// authenticated (both held and persisted). The authenticating phase lives in
// the auth service call that is in flight; it leaves no state here until it
// succeeds.
type Store struct {
	kv  *store.KV
	log logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewStore returns an anonymous session over the given kv store.
func NewStore(kv *store.KV, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Rehydrate loads a persisted session, if any, without a server round trip.
// The token is trusted on read; a later 401 still evicts it.
func (s *Store) Rehydrate(ctx context.Context) error {
	tokenData, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("reading persisted token: %w", err)
	}
	userData, err := s.kv.Get(ctx, userKey)
	if err != nil {
		return fmt.Errorf("reading persisted user: %w", err)
	}
	if len(tokenData) == 0 || len(userData) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable persisted session", "error", err)
		return s.Clear(ctx)
	}

	s.mu.Lock()
	s.token = string(tokenData)
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Establish transitions to authenticated and persists the pair.
func (s *Store) Establish(ctx context.Context, token string, user models.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := s.kv.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	if err := s.kv.Set(ctx, userKey, userData); err != nil {
		// don't leave a token on disk with no user behind it
		if derr := s.kv.Delete(ctx, tokenKey); derr != nil {
			s.log.Error(ctx, "rolling back persisted token", "error", derr)
		}
		return fmt.Errorf("persisting user: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	return nil
}

// UseToken holds a freshly issued token in memory only, so the identity
// fetch that completes authentication goes out authorized. Establish (or a
// 401) settles the final state.
func (s *Store) UseToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear transitions back to anonymous, wiping persisted state. Used by
// logout.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	if err := s.kv.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("clearing user: %w", err)
	}
	return nil
}

// Evict is the 401 path: it clears in-memory and persisted state. It is safe
// to call from the transport with no context of its own.
func (s *Store) Evict() {
	ctx := context.Background()
	if err := s.Clear(ctx); err != nil {
		s.log.Error(ctx, "evicting session", "error", err)
	}
}

// Token implements api.TokenSource. Empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the authenticated identity, if any.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether both a user and a token are held.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}
