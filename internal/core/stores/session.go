package stores

import (
	"errors"
	"sync"

	"sacco-desk/internal/core/domain"
)

// SnapshotStore persists the session between runs. The three fields always
// travel together so a reload rehydrates exactly what was written.
type SnapshotStore interface {
	Save(user *domain.UserProfile, token string, role domain.Role) error
	Load() (*domain.UserProfile, string, domain.Role, error)
	Clear() error
}

// Session is the single source of truth for who is logged in and with what
// credential. Every resource store reads the token from here at the moment
// an action is invoked.
type Session struct {
	mu    sync.RWMutex
	store SnapshotStore

	user          *domain.UserProfile
	token         string
	role          domain.Role
	savingBalance float64
	loanBalance   float64
}

// NewSession creates a session store hydrated from the durable snapshot.
// A missing snapshot yields an empty session; a corrupt one is surfaced.
func NewSession(store SnapshotStore) (*Session, error) {
	s := &Session{store: store}
	if store == nil {
		return s, nil
	}

	user, token, role, err := store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return s, nil
		}
		return nil, err
	}
	s.user = user
	s.token = token
	s.role = role
	return s, nil
}

// SetAuthData stores the authenticated user and credential. The durable
// snapshot is written before the in-memory state changes, so a crash
// between the two never leaves storage behind memory. Role is derived from
// the user, never set independently.
func (s *Session) SetAuthData(user *domain.UserProfile, token string) error {
	role := domain.Role("")
	if user != nil {
		role = user.Role
	}
	if s.store != nil {
		if err := s.store.Save(user, token, role); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	s.role = role
	return nil
}

// SetUserProfilePicture merges a new picture reference into the current
// user without touching the credential. A missing user makes this a no-op.
func (s *Session) SetUserProfilePicture(pictureRef string) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil
	}
	updated := *s.user
	updated.ProfilePicture = pictureRef
	s.user = &updated
	token, role := s.token, s.role
	s.mu.Unlock()

	if s.store != nil {
		return s.store.Save(&updated, token, role)
	}
	return nil
}

// SetBalances stores the two display balances. They are not persisted:
// each dashboard mount refetches them.
func (s *Session) SetBalances(saving, loan float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savingBalance = saving
	s.loanBalance = loan
}

// ClearAuthData erases the durable snapshot and resets the in-memory state
// to the empty session. Idempotent.
func (s *Session) ClearAuthData() error {
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.role = ""
	s.savingBalance = 0
	s.loanBalance = 0
	return nil
}

// Token returns the current bearer credential ("" when logged out).
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil when logged out.
func (s *Session) User() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Role returns the current role ("" when logged out).
func (s *Session) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Balances returns the saving and loan display balances.
func (s *Session) Balances() (saving, loan float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savingBalance, s.loanBalance
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}
