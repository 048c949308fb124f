package mocks

import (
	"context"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// MockPaperRepository implements domain.PaperRepository interface for testing
type MockPaperRepository struct {
	CreateFunc   func(ctx context.Context, paper *domain.ResearchPaper) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.ResearchPaper, error)
	UpdateFunc   func(ctx context.Context, paper *domain.ResearchPaper) error
	DeleteFunc   func(ctx context.Context, id string) error
	ListFunc     func(ctx context.Context, authorID string) ([]*domain.ResearchPaper, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

// NewMockPaperRepository creates a new MockPaperRepository with default behaviors
func NewMockPaperRepository() *MockPaperRepository {
	return &MockPaperRepository{}
}

// Create creates a new paper
func (m *MockPaperRepository) Create(ctx context.Context, paper *domain.ResearchPaper) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, paper)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a paper by ID
func (m *MockPaperRepository) FindByID(ctx context.Context, id string) (*domain.ResearchPaper, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrNotFound
}

// Update updates an existing paper
func (m *MockPaperRepository) Update(ctx context.Context, paper *domain.ResearchPaper) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, paper)
	}
	// Default behavior: success
	return nil
}

// Delete deletes a paper
func (m *MockPaperRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// List returns papers, optionally filtered by author
func (m *MockPaperRepository) List(ctx context.Context, authorID string) ([]*domain.ResearchPaper, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, authorID)
	}
	// Default behavior: empty
	return nil, nil
}

// Count returns the paper total
func (m *MockPaperRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	// Default behavior: zero
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.PaperRepository = (*MockPaperRepository)(nil)
