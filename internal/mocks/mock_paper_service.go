package mocks

import (
	"context"
	"io"
	"time"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// MockPaperService implements domain.PaperService interface for testing
type MockPaperService struct {
	CreateFunc func(ctx context.Context, callerID, authorName, title, abstract string, tags []string, file io.Reader, filename string) (*domain.ResearchPaper, error)
	EditFunc   func(ctx context.Context, paperID, callerID string, upd domain.PaperUpdate, file io.Reader, filename string) (*domain.ResearchPaper, error)
	DeleteFunc func(ctx context.Context, paperID, callerID string) error
	ListFunc   func(ctx context.Context, authorID string) ([]*domain.ResearchPaper, error)
}

// NewMockPaperService creates a new MockPaperService with default behaviors
func NewMockPaperService() *MockPaperService {
	return &MockPaperService{}
}

// Create uploads a new paper
func (m *MockPaperService) Create(ctx context.Context, callerID, authorName, title, abstract string, tags []string, file io.Reader, filename string) (*domain.ResearchPaper, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, callerID, authorName, title, abstract, tags, file, filename)
	}
	// Default behavior: echo the submission
	return &domain.ResearchPaper{
		ID:         "mock-paper-id",
		Title:      title,
		Abstract:   abstract,
		Tags:       tags,
		AuthorID:   callerID,
		AuthorName: authorName,
		FileURL:    "https://blobs.test/papers/" + filename,
		CreatedAt:  time.Now(),
	}, nil
}

// Edit applies a paper update
func (m *MockPaperService) Edit(ctx context.Context, paperID, callerID string, upd domain.PaperUpdate, file io.Reader, filename string) (*domain.ResearchPaper, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, paperID, callerID, upd, file, filename)
	}
	// Default behavior: not found
	return nil, domain.ErrNotFound
}

// Delete removes a paper
func (m *MockPaperService) Delete(ctx context.Context, paperID, callerID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, paperID, callerID)
	}
	// Default behavior: not found
	return domain.ErrNotFound
}

// List returns papers, optionally filtered by author
func (m *MockPaperService) List(ctx context.Context, authorID string) ([]*domain.ResearchPaper, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, authorID)
	}
	// Default behavior: empty
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.PaperService = (*MockPaperService)(nil)
