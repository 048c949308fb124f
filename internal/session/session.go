// Package session manages the client-held session record: the safe
// user projection plus an absolute expiry, 24 hours from issuance.
// There is no server-side revocation; a session stays valid until its
// expiry regardless of logouts elsewhere.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// Store persists the raw session record on the client side.
type Store interface {
	// Load returns the stored record, or nil when none exists.
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// Manager issues, reads and destroys the client-held session.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewManager creates a session manager with the given TTL.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Issue creates and persists a session expiring ttl from now.
func (m *Manager) Issue(user *domain.PublicUser) (*domain.Session, error) {
	sess := &domain.Session{
		User:   user,
		Expiry: m.now().Add(m.ttl).UnixMilli(),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := m.store.Save(data); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Read returns the embedded user, or nil when no valid session exists.
// A legacy record without an expiry field is migrated in place with a
// fresh TTL counted from now; an expired record is discarded.
func (m *Manager) Read() (*domain.PublicUser, error) {
	data, err := m.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Corrupt record: discard rather than fail every read.
		_ = m.store.Clear()
		return nil, nil
	}

	if _, hasExpiry := raw["expiry"]; !hasExpiry {
		return m.migrateLegacy(data)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.User == nil {
		_ = m.store.Clear()
		return nil, nil
	}

	if m.now().UnixMilli() > sess.Expiry {
		if err := m.store.Clear(); err != nil {
			return nil, fmt.Errorf("clear expired session: %w", err)
		}
		return nil, nil
	}
	return sess.User, nil
}

// migrateLegacy wraps a pre-expiry record (the bare user object) into
// the expiring shape and persists it before returning the user. The
// migrated session expires ttl after the migration, not before.
func (m *Manager) migrateLegacy(data []byte) (*domain.PublicUser, error) {
	var user domain.PublicUser
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		_ = m.store.Clear()
		return nil, nil
	}

	if _, err := m.Issue(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Destroy clears the stored session unconditionally.
func (m *Manager) Destroy() error {
	return m.store.Clear()
}
