package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

type memStore struct {
	data []byte
}

func (m *memStore) Load() ([]byte, error) { return m.data, nil }
func (m *memStore) Save(d []byte) error   { m.data = append([]byte(nil), d...); return nil }
func (m *memStore) Clear() error          { m.data = nil; return nil }

func newTestManager(store Store, at time.Time) *Manager {
	m := NewManager(store, 24*time.Hour)
	m.now = func() time.Time { return at }
	return m
}

func testUser() *domain.PublicUser {
	return &domain.PublicUser{ID: "acc-1", Name: "Ana", Email: "ana@x.com", Verified: true}
}

func TestManager_IssueAndRead(t *testing.T) {
	store := &memStore{}
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	m := newTestManager(store, issued)

	sess, err := m.Issue(testUser())
	require.NoError(t, err)
	assert.Equal(t, issued.Add(24*time.Hour).UnixMilli(), sess.Expiry)

	user, err := m.Read()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "acc-1", user.ID)
}

func TestManager_ExpiredSessionReadsAsAbsent(t *testing.T) {
	store := &memStore{}
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	m := newTestManager(store, issued)

	_, err := m.Issue(testUser())
	require.NoError(t, err)

	// 24h plus a minute later the session is gone.
	m.now = func() time.Time { return issued.Add(24*time.Hour + time.Minute) }
	user, err := m.Read()
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, store.data, "expired session should be cleared from the store")
}

func TestManager_SessionValidUntilExpiry(t *testing.T) {
	store := &memStore{}
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	m := newTestManager(store, issued)

	_, err := m.Issue(testUser())
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(23 * time.Hour) }
	user, err := m.Read()
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestManager_LegacySessionMigratedOnFirstRead(t *testing.T) {
	// Legacy shape: the bare user object, no expiry field.
	legacy, err := json.Marshal(testUser())
	require.NoError(t, err)
	store := &memStore{data: legacy}

	migratedAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	m := newTestManager(store, migratedAt)

	user, err := m.Read()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "acc-1", user.ID)

	// The store now holds the expiring shape.
	var sess domain.Session
	require.NoError(t, json.Unmarshal(store.data, &sess))
	assert.Equal(t, migratedAt.Add(24*time.Hour).UnixMilli(), sess.Expiry)

	// Still valid 23h after migration...
	m.now = func() time.Time { return migratedAt.Add(23 * time.Hour) }
	user, err = m.Read()
	require.NoError(t, err)
	require.NotNil(t, user)

	// ...and absent 25h after migration.
	m.now = func() time.Time { return migratedAt.Add(25 * time.Hour) }
	user, err = m.Read()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestManager_CorruptSessionDiscarded(t *testing.T) {
	store := &memStore{data: []byte("{not json")}
	m := newTestManager(store, time.Now())

	user, err := m.Read()
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, store.data)
}

func TestManager_ReadWithNoSession(t *testing.T) {
	m := newTestManager(&memStore{}, time.Now())
	user, err := m.Read()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestManager_Destroy(t *testing.T) {
	store := &memStore{}
	m := newTestManager(store, time.Now())

	_, err := m.Issue(testUser())
	require.NoError(t, err)
	require.NoError(t, m.Destroy())
	assert.Nil(t, store.data)

	// Destroy with nothing stored is fine too.
	require.NoError(t, m.Destroy())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/sess/session.json"
	fs := NewFileStore(path)

	data, err := fs.Load()
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, fs.Save([]byte(`{"expiry":1}`)))
	data, err = fs.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"expiry":1}`, string(data))

	require.NoError(t, fs.Clear())
	data, err = fs.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}
