package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/tasks"
)

// PaperServiceImpl implements domain.PaperService. Every mutation
// applies the ownership check: the caller's id must equal the stored
// author id.
type PaperServiceImpl struct {
	paperRepo domain.PaperRepository
	blobStore domain.BlobStore
	recorder  domain.ActivityRecorder
	runner    *tasks.Runner
}

// NewPaperService creates a new paper service
func NewPaperService(
	paperRepo domain.PaperRepository,
	blobStore domain.BlobStore,
	recorder domain.ActivityRecorder,
	runner *tasks.Runner,
) domain.PaperService {
	return &PaperServiceImpl{
		paperRepo: paperRepo,
		blobStore: blobStore,
		recorder:  recorder,
		runner:    runner,
	}
}

// Create implements domain.PaperService
func (s *PaperServiceImpl) Create(ctx context.Context, callerID, authorName, title, abstract string, tags []string, file io.Reader, filename string) (*domain.ResearchPaper, error) {
	title = strings.TrimSpace(title)
	if title == "" || file == nil {
		return nil, domain.ErrValidation
	}

	authorID := callerID
	if authorID == "" {
		authorID = domain.ExternalAuthor
	}

	fileURL, err := s.blobStore.Put(ctx, uploadKey("papers", filename), file)
	if err != nil {
		return nil, err
	}

	paper := &domain.ResearchPaper{
		Title:      title,
		Abstract:   abstract,
		Tags:       tags,
		AuthorID:   authorID,
		AuthorName: authorName,
		FileURL:    fileURL,
		CreatedAt:  time.Now(),
	}
	if err := s.paperRepo.Create(ctx, paper); err != nil {
		// The record never existed; don't leave its artifact behind.
		s.scheduleArtifactDelete(fileURL)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.recorder.Record("Paper Uploaded", callerID, fmt.Sprintf("title=%s", title))
	return paper, nil
}

// Edit implements domain.PaperService. Only supplied fields change;
// omitting the file keeps the prior artifact.
func (s *PaperServiceImpl) Edit(ctx context.Context, paperID, callerID string, upd domain.PaperUpdate, file io.Reader, filename string) (*domain.ResearchPaper, error) {
	paper, err := s.paperRepo.FindByID(ctx, paperID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if callerID == "" || callerID != paper.AuthorID {
		return nil, domain.ErrForbidden
	}

	if upd.Title != nil && strings.TrimSpace(*upd.Title) != "" {
		paper.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Abstract != nil {
		paper.Abstract = *upd.Abstract
	}
	if upd.Tags != nil {
		paper.Tags = upd.Tags
	}

	if file != nil {
		newURL, err := s.blobStore.Put(ctx, uploadKey("papers", filename), file)
		if err != nil {
			return nil, err
		}
		old := paper.FileURL
		paper.FileURL = newURL
		if old != "" {
			s.scheduleArtifactDelete(old)
		}
	}

	now := time.Now()
	paper.UpdatedAt = &now
	if err := s.paperRepo.Update(ctx, paper); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.recorder.Record("Paper Updated", callerID, fmt.Sprintf("paper=%s", paper.ID))
	return paper, nil
}

// Delete implements domain.PaperService. Removes the record, then the
// stored artifact as a best-effort background task.
func (s *PaperServiceImpl) Delete(ctx context.Context, paperID, callerID string) error {
	paper, err := s.paperRepo.FindByID(ctx, paperID)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if callerID == "" || callerID != paper.AuthorID {
		return domain.ErrForbidden
	}

	if err := s.paperRepo.Delete(ctx, paperID); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if paper.FileURL != "" {
		s.scheduleArtifactDelete(paper.FileURL)
	}

	s.recorder.Record("Paper Deleted", callerID, fmt.Sprintf("paper=%s title=%s", paper.ID, paper.Title))
	return nil
}

// List implements domain.PaperService
func (s *PaperServiceImpl) List(ctx context.Context, authorID string) ([]*domain.ResearchPaper, error) {
	papers, err := s.paperRepo.List(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return papers, nil
}

func (s *PaperServiceImpl) scheduleArtifactDelete(url string) {
	s.runner.Submit("artifact-delete", func(ctx context.Context) error {
		return s.blobStore.Delete(ctx, url)
	})
}
