package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// ActivityRepositoryImpl implements domain.ActivityRepository using GORM.
// The table is append-only; nothing updates or deletes rows.
type ActivityRepositoryImpl struct {
	db *gorm.DB
}

// DBActivity represents the database model for ActivityEntry
type DBActivity struct {
	ID        string `gorm:"primaryKey;size:36"`
	Action    string `gorm:"size:128;index"`
	UserID    string `gorm:"size:36;index"`
	Details   string `gorm:"type:text"`
	Timestamp time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBActivity) TableName() string {
	return "activity_log"
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) domain.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// Append implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	dbEntry := &DBActivity{
		ID:        entry.ID,
		Action:    entry.Action,
		UserID:    entry.UserID,
		Details:   entry.Details,
		Timestamp: entry.Timestamp,
	}
	return r.db.WithContext(ctx).Create(dbEntry).Error
}

// List implements domain.ActivityRepository, newest first.
func (r *ActivityRepositoryImpl) List(ctx context.Context, limit int) ([]*domain.ActivityEntry, error) {
	q := r.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var dbEntries []DBActivity
	if err := q.Find(&dbEntries).Error; err != nil {
		return nil, err
	}

	entries := make([]*domain.ActivityEntry, 0, len(dbEntries))
	for i := range dbEntries {
		e := dbEntries[i]
		entries = append(entries, &domain.ActivityEntry{
			ID:        e.ID,
			Action:    e.Action,
			UserID:    e.UserID,
			Details:   e.Details,
			Timestamp: e.Timestamp,
		})
	}
	return entries, nil
}

// Count implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBActivity{}).Count(&n).Error
	return n, err
}
