// Package session holds the live, process-wide view of the
// authenticated user and the operations that mutate it. One Service is
// constructed at startup and lives for the process; it is the single
// integration surface feature handlers use to read identity and roles
// and to trigger login and logout.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"careerconnect/gateway/internal/credstore"
	"careerconnect/gateway/internal/models"
)

type Service struct {
	store credstore.Store
	log   zerolog.Logger

	mu    sync.RWMutex
	token string
	user  *models.UserSnapshot
}

// NewService seeds the live state from whatever the credential store
// holds. An unreadable store means starting signed out, never a failed
// startup.
func NewService(ctx context.Context, store credstore.Store, log zerolog.Logger) *Service {
	s := &Service{store: store, log: log}

	creds, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("credential store unreadable, starting signed out")
		return s
	}
	if creds != nil {
		user := creds.User
		s.token = creds.Token
		s.user = &user
		log.Info().Str("username", user.Username).Msg("session restored")
	}
	return s
}

// Login normalizes the upstream payload, persists the credential pair
// and only then swaps the live state, so a persisted session always
// matches what callers observe. Logging in twice with the same payload
// yields the same session.
func (s *Service) Login(ctx context.Context, token string, payload map[string]any) (models.UserSnapshot, error) {
	user := models.NormalizeUser(payload)

	if err := s.store.Save(ctx, credstore.Credentials{Token: token, User: user}); err != nil {
		return models.UserSnapshot{}, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	s.log.Info().Str("username", user.Username).Msg("signed in")
	return user, nil
}

// Logout clears the store and revokes in-memory access immediately.
// It is a safe no-op when no session exists.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.log.Info().Msg("signed out")
	return nil
}

// HasRole implements the role gate: an empty requirement is "no
// restriction" and always passes; otherwise at least one of the
// required roles must be held. With no active session every non-empty
// requirement fails.
func (s *Service) HasRole(required ...models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(required) == 0 {
		return true
	}
	return s.user.HasAnyRole(required...)
}

// Token returns the current bearer token, or "" with no session.
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a session is active.
func (s *Service) Authenticated() bool {
	return s.Token() != ""
}

// Current returns a copy of the user snapshot, or nil with no session.
func (s *Service) Current() *models.UserSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// RememberProfileIDs refreshes the cached jobSeekerId/employerId hints
// and persists them with the credential pair. Hints are an optimization
// only. No-op when signed out or when both arguments are nil.
func (s *Service) RememberProfileIDs(ctx context.Context, jobSeekerID, employerID *int64) error {
	s.mu.Lock()
	if s.user == nil || (jobSeekerID == nil && employerID == nil) {
		s.mu.Unlock()
		return nil
	}
	if jobSeekerID != nil {
		s.user.JobSeekerID = jobSeekerID
	}
	if employerID != nil {
		s.user.EmployerID = employerID
	}
	creds := credstore.Credentials{Token: s.token, User: *s.user}
	s.mu.Unlock()

	if err := s.store.Save(ctx, creds); err != nil {
		return fmt.Errorf("persist profile hints: %w", err)
	}
	return nil
}

// Reload re-derives the live state from the store. It reports whether
// anything changed, which only happens when another process sharing the
// backend has signed in or out.
func (s *Service) Reload(ctx context.Context) (bool, error) {
	creds, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if creds == nil {
		if s.token == "" {
			return false, nil
		}
		s.token = ""
		s.user = nil
		return true, nil
	}

	if creds.Token == s.token {
		return false, nil
	}
	user := creds.User
	s.token = creds.Token
	s.user = &user
	return true, nil
}
