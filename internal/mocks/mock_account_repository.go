package mocks

import (
	"context"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc       func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc  func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Account, error)
	UpdateFunc       func(ctx context.Context, account *domain.Account) error
	MarkVerifiedFunc func(ctx context.Context, id string) (bool, error)
	DeleteFunc       func(ctx context.Context, id string) error
	ListFunc         func(ctx context.Context) ([]*domain.Account, error)
	CountFunc        func(ctx context.Context) (int64, int64, int64, error)
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrNotFound
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrNotFound
}

// Update updates an existing account
func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// MarkVerified flips the verified flag if still unverified
func (m *MockAccountRepository) MarkVerified(ctx context.Context, id string) (bool, error) {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, id)
	}
	// Default behavior: flag flipped
	return true, nil
}

// Delete deletes an account
func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// List returns all accounts
func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// Count returns account totals
func (m *MockAccountRepository) Count(ctx context.Context) (total, verified, admins int64, err error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	// Default behavior: zeroes
	return 0, 0, 0, nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
