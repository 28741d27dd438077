// Package session implements the client session: the login gate and
// the in-memory, append-only submission list backed by a store adapter.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"formvault/internal/client/store"
	"formvault/internal/models"
)

// ErrEmptyCredentials is returned by Login when the username or
// password is empty. It is the only error a user ever sees; store
// failures are absorbed.
var ErrEmptyCredentials = errors.New("username and password must not be empty")

// ErrNotAuthenticated is returned by Submit outside an authenticated
// session.
var ErrNotAuthenticated = errors.New("not logged in")

// Session holds the state between a successful login and a logout: the
// credential pair and the ordered submission list. A Session is bound
// to a single interactive user and is not safe for concurrent use.
type Session struct {
	store store.Store
	log   *zap.Logger

	id            string
	creds         models.Credentials
	submissions   []models.Submission
	authenticated bool
}

// New creates an anonymous Session over the given store adapter. If
// log is nil, logging is disabled.
func New(st store.Store, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{store: st, log: log}
}

// Login validates the credential pair and transitions the session to
// the authenticated state. The initial submission list is read from the
// store adapter; a failed read degrades to an empty list and never
// fails the login. The credentials are not checked against any
// authority — they only select whose submissions are visible.
func (s *Session) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	creds := models.Credentials{Username: username, Password: password}
	subs, err := s.store.Read(ctx, creds)
	if err != nil {
		s.log.Warn("initial read failed, starting with empty list",
			zap.String("username", username), zap.Error(err))
		subs = nil
	}

	s.id = uuid.NewString()
	s.creds = creds
	s.submissions = subs
	s.authenticated = true

	s.log.Info("logged in",
		zap.String("session", s.id),
		zap.String("username", username),
		zap.Int("submissions", len(subs)))
	return nil
}

// Logout unconditionally resets the session to the anonymous state,
// discarding the credentials and the in-memory submission list.
// Whatever the store adapter already persisted stays persisted.
func (s *Session) Logout() {
	if s.authenticated {
		s.log.Info("logged out", zap.String("session", s.id))
	}
	s.id = ""
	s.creds = models.Credentials{}
	s.submissions = nil
	s.authenticated = false
}

// Submit appends rec to the in-memory list and then persists it through
// the store adapter. The append always succeeds for an authenticated
// session: a failed persistence write is logged and otherwise ignored,
// leaving the in-memory list authoritative for the rest of the session.
func (s *Session) Submit(ctx context.Context, rec models.Submission) error {
	if !s.authenticated {
		return ErrNotAuthenticated
	}

	s.submissions = append(s.submissions, rec)

	if err := s.store.Append(ctx, s.creds, rec, s.submissions); err != nil {
		s.log.Warn("persist failed, keeping record in memory only",
			zap.String("session", s.id), zap.Error(err))
	}
	return nil
}

// Submissions returns the session's submission list in insertion
// order. The list is empty when anonymous. Callers must not modify the
// returned slice.
func (s *Session) Submissions() []models.Submission {
	return s.submissions
}

// Username returns the logged-in username, or "" when anonymous.
func (s *Session) Username() string {
	return s.creds.Username
}

// Authenticated reports whether a login has succeeded and no logout
// has happened since.
func (s *Session) Authenticated() bool {
	return s.authenticated
}
