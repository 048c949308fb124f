package mocks

import (
	"context"
	"io"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// MockAccountService implements domain.AccountService interface for testing
type MockAccountService struct {
	RegisterFunc      func(ctx context.Context, name, email, password string) (*domain.PublicUser, error)
	VerifyAccountFunc func(ctx context.Context, email, code string) error
	ResendCodeFunc    func(ctx context.Context, email string) error
	LoginFunc         func(ctx context.Context, email, password string) (*domain.PublicUser, error)
	UpdateProfileFunc func(ctx context.Context, accountID string, upd domain.ProfileUpdate, image io.Reader, imageName string) (*domain.PublicUser, error)
	SetAdminRoleFunc  func(ctx context.Context, targetID string, isAdmin bool) (*domain.PublicUser, error)
	DeleteAccountFunc func(ctx context.Context, targetID string) error
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

// Register registers a new account
func (m *MockAccountService) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	// Default behavior: echo a fresh unverified user
	return &domain.PublicUser{ID: "mock-id", Name: name, Email: email}, nil
}

// VerifyAccount verifies an account with an emailed code
func (m *MockAccountService) VerifyAccount(ctx context.Context, email, code string) error {
	if m.VerifyAccountFunc != nil {
		return m.VerifyAccountFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// ResendCode issues and delivers a fresh verification code
func (m *MockAccountService) ResendCode(ctx context.Context, email string) error {
	if m.ResendCodeFunc != nil {
		return m.ResendCodeFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Login authenticates an account
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: verified user
	return &domain.PublicUser{ID: "mock-id", Email: email, Verified: true}, nil
}

// UpdateProfile applies a profile update
func (m *MockAccountService) UpdateProfile(ctx context.Context, accountID string, upd domain.ProfileUpdate, image io.Reader, imageName string) (*domain.PublicUser, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, accountID, upd, image, imageName)
	}
	// Default behavior: return the bare account
	return &domain.PublicUser{ID: accountID, Verified: true}, nil
}

// SetAdminRole changes the admin flag on an account
func (m *MockAccountService) SetAdminRole(ctx context.Context, targetID string, isAdmin bool) (*domain.PublicUser, error) {
	if m.SetAdminRoleFunc != nil {
		return m.SetAdminRoleFunc(ctx, targetID, isAdmin)
	}
	// Default behavior: echo the change
	return &domain.PublicUser{ID: targetID, IsAdmin: isAdmin, Verified: true}, nil
}

// DeleteAccount removes an account
func (m *MockAccountService) DeleteAccount(ctx context.Context, targetID string) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, targetID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)
