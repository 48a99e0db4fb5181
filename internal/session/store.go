// Package session implements the session and learning-progress state
// manager: the single authority for who is logged in and what they have
// completed. It bridges the remote authentication service and the durable
// key-value store; every state change is persisted before the operation
// returns, so a caller observing success also observes durable persistence.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/example/signlearn/internal/authsvc"
	"github.com/example/signlearn/internal/kvstore"
	"github.com/example/signlearn/internal/progress"
	"github.com/example/signlearn/pkg/models"
)

// Persisted keys. rememberMe is written on behalf of the login form and
// never read back.
const (
	keyUser       = "user"
	keyAuthToken  = "authToken"
	keyRememberMe = "rememberMe"
)

// Store owns the current session: the signed-in user, their auth token and
// the transient loading flag. The user is present if and only if the token
// is present. A mutex makes login/signup single-flight; overlapping calls
// are rejected with ErrOperationInFlight instead of racing.
type Store struct {
	kv  kvstore.Store
	svc authsvc.Service

	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool
}

// New creates a session store over the given persistence store and
// authentication service. Call Initialize before use.
func New(kv kvstore.Store, svc authsvc.Service) *Store {
	return &Store{kv: kv, svc: svc}
}

// Initialize restores a persisted session, if any. The session comes up
// authenticated only when both the user record and the token are present
// and the record parses; anything malformed is treated as absent.
// Initialize never fails observably.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	rawUser, haveUser, err := s.kv.Get(keyUser)
	if err != nil || !haveUser {
		return
	}
	token, haveToken, err := s.kv.Get(keyAuthToken)
	if err != nil || !haveToken || token == "" {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return
	}
	if user.CompletedLessons == nil {
		user.CompletedLessons = []string{}
	}

	s.user = &user
	s.token = token
}

// Login authenticates against the remote service. On success the returned
// record is the new current user and both the record and the token have
// been persisted. Failures leave prior state untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, &AuthError{Code: CodeInvalidCredentials, Message: authsvc.ErrMsgInvalidCredentials}
	}

	if err := s.beginFlight(); err != nil {
		return nil, err
	}
	defer s.endFlight()

	resp, err := s.svc.Login(ctx, email, password)
	if err != nil {
		return nil, &AuthError{Code: CodeServiceUnavailable, Message: msgLoginFailed}
	}
	if !resp.Success {
		return nil, &AuthError{Code: CodeInvalidCredentials, Message: resp.Error}
	}
	if resp.User == nil || resp.Token == "" {
		return nil, &AuthError{Code: CodeServiceUnavailable, Message: msgLoginFailed}
	}

	user := userFromPayload(resp.User)

	s.mu.Lock()
	defer s.mu.Unlock()

	prevUser, prevToken := s.user, s.token
	s.user, s.token = user, resp.Token
	if err := s.persistSessionLocked(); err != nil {
		s.user, s.token = prevUser, prevToken
		s.restorePersistedLocked()
		return nil, &AuthError{Code: CodeServiceUnavailable, Message: msgLoginFailed}
	}
	return s.user.Clone(), nil
}

// Signup registers a new account with the remote service. It does not
// authenticate the caller; the account still has to log in.
func (s *Store) Signup(ctx context.Context, name, email, password string) error {
	if err := s.beginFlight(); err != nil {
		return err
	}
	defer s.endFlight()

	resp, err := s.svc.Signup(ctx, name, email, password)
	if err != nil {
		return &AuthError{Code: CodeServiceUnavailable, Message: msgSignupFailed}
	}
	if !resp.Success {
		code := CodeSignupRejected
		if resp.Error == authsvc.ErrMsgMissingFields {
			code = CodeMissingFields
		}
		return &AuthError{Code: code, Message: resp.Error}
	}
	return nil
}

// Logout clears the session and erases the persisted copies. It is
// idempotent and deletes the persisted keys even when already signed out.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""

	if err := s.kv.Delete(keyUser); err != nil {
		return fmt.Errorf("failed to clear persisted user: %v", err)
	}
	if err := s.kv.Delete(keyAuthToken); err != nil {
		return fmt.Errorf("failed to clear persisted token: %v", err)
	}
	return nil
}

// UpdateProgress records a completed lesson. Progress only ever moves up,
// the completed set never shrinks, and repeating a lesson is a no-op for
// the set. Calling this while signed out does nothing.
func (s *Store) UpdateProgress(lessonID string, reported int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	prev := s.user.Clone()
	s.user.LearningProgress = progress.Advance(s.user.LearningProgress, reported)
	if !s.user.HasCompleted(lessonID) {
		s.user.CompletedLessons = append(s.user.CompletedLessons, lessonID)
	}

	if err := s.persistUserLocked(); err != nil {
		s.user = prev
		return fmt.Errorf("failed to persist progress: %v", err)
	}
	return nil
}

// RememberMe sets or clears the presence-only remember-me flag on behalf of
// the login form. Nothing reads the flag back; it is persisted verbatim so
// a future requirement can pick it up.
func (s *Store) RememberMe(remember bool) error {
	if remember {
		return s.kv.Set(keyRememberMe, "true")
	}
	return s.kv.Delete(keyRememberMe)
}

// Token returns the current auth token, or "" when signed out
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// CurrentUser returns a copy of the signed-in user, or nil
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// IsAuthenticated reports whether a user is signed in
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsLoading reports whether a login or signup call is in flight. It is a
// hint for the UI; mutual exclusion is enforced separately.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) beginFlight() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrOperationInFlight
	}
	s.loading = true
	return nil
}

func (s *Store) endFlight() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// persistSessionLocked writes the user record and token together
func (s *Store) persistSessionLocked() error {
	data, err := json.Marshal(s.user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %v", err)
	}
	if err := s.kv.Set(keyUser, string(data)); err != nil {
		return fmt.Errorf("failed to persist user: %v", err)
	}
	if err := s.kv.Set(keyAuthToken, s.token); err != nil {
		return fmt.Errorf("failed to persist token: %v", err)
	}
	return nil
}

// persistUserLocked rewrites only the user record; the token is unchanged
func (s *Store) persistUserLocked() error {
	data, err := json.Marshal(s.user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %v", err)
	}
	return s.kv.Set(keyUser, string(data))
}

// restorePersistedLocked puts the persisted keys back in line with the
// in-memory state after a failed write. Best effort; a second failure here
// only means the next Initialize starts unauthenticated.
func (s *Store) restorePersistedLocked() {
	if s.user == nil {
		s.kv.Delete(keyUser)
		s.kv.Delete(keyAuthToken)
		return
	}
	s.persistSessionLocked()
}

// userFromPayload builds the session's user record from a login response,
// defaulting the optional fields the service may omit
func userFromPayload(p *authsvc.UserPayload) *models.User {
	user := &models.User{
		ID:               p.ID,
		Name:             p.Name,
		Email:            p.Email,
		Avatar:           p.Avatar,
		LearningProgress: progress.Clamp(p.LearningProgress),
		CompletedLessons: []string{},
	}
	if p.CompletedLessons != nil {
		user.CompletedLessons = append([]string(nil), p.CompletedLessons...)
	}
	return user
}
