package mocks

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: reversible mock hash
	return "hashed:" + password, nil
}

// Verify checks a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: match the mock hash
	return hashedPassword == "hashed:"+password
}

var _ domain.PasswordService = (*MockPasswordService)(nil)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(accountID string, isAdmin bool) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate generates a session token
func (m *MockTokenService) Generate(accountID string, isAdmin bool) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountID, isAdmin)
	}
	// Default behavior: return a mock token
	return fmt.Sprintf("token_%s_%t", accountID, isAdmin), nil
}

// Validate validates a session token and returns claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	now := time.Now().Unix()
	return &domain.TokenClaims{
		AccountID: "mock-account-id",
		IsAdmin:   false,
		IssuedAt:  now,
		ExpiresAt: now + 86400,
	}, nil
}

var _ domain.TokenService = (*MockTokenService)(nil)

// MockMailSender implements domain.MailSender interface for testing.
// Sent messages are recorded for inspection.
type MockMailSender struct {
	SendFunc func(ctx context.Context, to, subject, body string) error

	mu   sync.Mutex
	sent []SentMail
}

// SentMail is one recorded delivery.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// NewMockMailSender creates a new MockMailSender with default behaviors
func NewMockMailSender() *MockMailSender {
	return &MockMailSender{}
}

// Send delivers an email
func (m *MockMailSender) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	m.mu.Lock()
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
	m.mu.Unlock()
	return nil
}

// Sent returns a copy of the recorded deliveries.
func (m *MockMailSender) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

var _ domain.MailSender = (*MockMailSender)(nil)

// MockBlobStore implements domain.BlobStore interface for testing.
// Stored keys and deleted URLs are recorded for inspection.
type MockBlobStore struct {
	PutFunc    func(ctx context.Context, key string, r io.Reader) (string, error)
	DeleteFunc func(ctx context.Context, url string) error

	mu      sync.Mutex
	puts    []string
	deletes []string
}

// NewMockBlobStore creates a new MockBlobStore with default behaviors
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

// Put stores a blob and returns its URL
func (m *MockBlobStore) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, r)
	}
	m.mu.Lock()
	m.puts = append(m.puts, key)
	m.mu.Unlock()
	return "https://blobs.test/" + key, nil
}

// Delete removes a blob by URL
func (m *MockBlobStore) Delete(ctx context.Context, url string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, url)
	}
	m.mu.Lock()
	m.deletes = append(m.deletes, url)
	m.mu.Unlock()
	return nil
}

// Puts returns the stored keys.
func (m *MockBlobStore) Puts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.puts))
	copy(out, m.puts)
	return out
}

// Deletes returns the deleted URLs.
func (m *MockBlobStore) Deletes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.deletes))
	copy(out, m.deletes)
	return out
}

var _ domain.BlobStore = (*MockBlobStore)(nil)

// MockVerificationService implements domain.VerificationService interface for testing
type MockVerificationService struct {
	NewCodeFunc       func(ctx context.Context, email string) (string, error)
	RecordAttemptFunc func(ctx context.Context, email string) error
	ClearAttemptsFunc func(ctx context.Context, email string)
}

// NewMockVerificationService creates a new MockVerificationService with default behaviors
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// NewCode generates a verification code
func (m *MockVerificationService) NewCode(ctx context.Context, email string) (string, error) {
	if m.NewCodeFunc != nil {
		return m.NewCodeFunc(ctx, email)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// RecordAttempt counts one verification attempt
func (m *MockVerificationService) RecordAttempt(ctx context.Context, email string) error {
	if m.RecordAttemptFunc != nil {
		return m.RecordAttemptFunc(ctx, email)
	}
	// Default behavior: under the limit
	return nil
}

// ClearAttempts resets the attempt counter
func (m *MockVerificationService) ClearAttempts(ctx context.Context, email string) {
	if m.ClearAttemptsFunc != nil {
		m.ClearAttemptsFunc(ctx, email)
	}
}

var _ domain.VerificationService = (*MockVerificationService)(nil)

// MockActivityRecorder implements domain.ActivityRecorder interface for
// testing. Recorded actions are kept for inspection.
type MockActivityRecorder struct {
	mu      sync.Mutex
	entries []RecordedActivity
}

// RecordedActivity is one recorded audit call.
type RecordedActivity struct {
	Action  string
	UserID  string
	Details string
}

// NewMockActivityRecorder creates a new MockActivityRecorder
func NewMockActivityRecorder() *MockActivityRecorder {
	return &MockActivityRecorder{}
}

// Record records an audit entry
func (m *MockActivityRecorder) Record(action, userID, details string) {
	m.mu.Lock()
	m.entries = append(m.entries, RecordedActivity{Action: action, UserID: userID, Details: details})
	m.mu.Unlock()
}

// Entries returns the recorded calls.
func (m *MockActivityRecorder) Entries() []RecordedActivity {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedActivity, len(m.entries))
	copy(out, m.entries)
	return out
}

var _ domain.ActivityRecorder = (*MockActivityRecorder)(nil)
