package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// PaperRepositoryImpl implements domain.PaperRepository using GORM
type PaperRepositoryImpl struct {
	db *gorm.DB
}

// DBPaper represents the database model for ResearchPaper. Tags are
// stored as a JSON array in a text column to keep ordering.
type DBPaper struct {
	ID         string `gorm:"primaryKey;size:36"`
	Title      string `gorm:"size:512"`
	Abstract   string `gorm:"type:text"`
	Tags       string `gorm:"type:text"`
	AuthorID   string `gorm:"index;size:36"`
	AuthorName string `gorm:"size:255"`
	FileURL    string
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  *time.Time
}

// TableName returns the table name for GORM
func (DBPaper) TableName() string {
	return "research_papers"
}

// NewPaperRepository creates a new paper repository
func NewPaperRepository(db *gorm.DB) domain.PaperRepository {
	return &PaperRepositoryImpl{db: db}
}

// Create implements domain.PaperRepository
func (r *PaperRepositoryImpl) Create(ctx context.Context, paper *domain.ResearchPaper) error {
	if paper.ID == "" {
		paper.ID = uuid.NewString()
	}
	dbPaper, err := r.domainToDB(paper)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(dbPaper).Error; err != nil {
		return err
	}
	paper.CreatedAt = dbPaper.CreatedAt
	return nil
}

// FindByID implements domain.PaperRepository
func (r *PaperRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.ResearchPaper, error) {
	var dbPaper DBPaper
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPaper).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbPaper)
}

// Update implements domain.PaperRepository
func (r *PaperRepositoryImpl) Update(ctx context.Context, paper *domain.ResearchPaper) error {
	dbPaper, err := r.domainToDB(paper)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(dbPaper).Error
}

// Delete implements domain.PaperRepository
func (r *PaperRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBPaper{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List implements domain.PaperRepository. An empty authorID lists all
// papers, newest first.
func (r *PaperRepositoryImpl) List(ctx context.Context, authorID string) ([]*domain.ResearchPaper, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if authorID != "" {
		q = q.Where("author_id = ?", authorID)
	}

	var dbPapers []DBPaper
	if err := q.Find(&dbPapers).Error; err != nil {
		return nil, err
	}

	papers := make([]*domain.ResearchPaper, 0, len(dbPapers))
	for i := range dbPapers {
		p, err := r.dbToDomain(&dbPapers[i])
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// Count implements domain.PaperRepository
func (r *PaperRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBPaper{}).Count(&n).Error
	return n, err
}

func (r *PaperRepositoryImpl) domainToDB(paper *domain.ResearchPaper) (*DBPaper, error) {
	tags := paper.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return &DBPaper{
		ID:         paper.ID,
		Title:      paper.Title,
		Abstract:   paper.Abstract,
		Tags:       string(encoded),
		AuthorID:   paper.AuthorID,
		AuthorName: paper.AuthorName,
		FileURL:    paper.FileURL,
		CreatedAt:  paper.CreatedAt,
		UpdatedAt:  paper.UpdatedAt,
	}, nil
}

func (r *PaperRepositoryImpl) dbToDomain(dbPaper *DBPaper) (*domain.ResearchPaper, error) {
	tags := []string{}
	if dbPaper.Tags != "" {
		if err := json.Unmarshal([]byte(dbPaper.Tags), &tags); err != nil {
			return nil, err
		}
	}
	return &domain.ResearchPaper{
		ID:         dbPaper.ID,
		Title:      dbPaper.Title,
		Abstract:   dbPaper.Abstract,
		Tags:       tags,
		AuthorID:   dbPaper.AuthorID,
		AuthorName: dbPaper.AuthorName,
		FileURL:    dbPaper.FileURL,
		CreatedAt:  dbPaper.CreatedAt,
		UpdatedAt:  dbPaper.UpdatedAt,
	}, nil
}
