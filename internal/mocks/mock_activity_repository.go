package mocks

import (
	"context"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// MockActivityRepository implements domain.ActivityRepository interface for testing
type MockActivityRepository struct {
	AppendFunc func(ctx context.Context, entry *domain.ActivityEntry) error
	ListFunc   func(ctx context.Context, limit int) ([]*domain.ActivityEntry, error)
	CountFunc  func(ctx context.Context) (int64, error)
}

// NewMockActivityRepository creates a new MockActivityRepository with default behaviors
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

// Append appends an audit entry
func (m *MockActivityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	// Default behavior: success
	return nil
}

// List returns the newest entries up to limit
func (m *MockActivityRepository) List(ctx context.Context, limit int) ([]*domain.ActivityEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	// Default behavior: empty
	return nil, nil
}

// Count returns the entry total
func (m *MockActivityRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	// Default behavior: zero
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.ActivityRepository = (*MockActivityRepository)(nil)
