package repository

import (
	"context"
	"errors"
	"time"

	"wellspring/internal/models"

	"gorm.io/gorm"
)

// ActivityRepository defines persistence operations for activity entries.
type ActivityRepository interface {
	Create(ctx context.Context, entry *models.ActivityEntry) error
	GetByID(ctx context.Context, id uint) (*models.ActivityEntry, error)
	ListByUser(ctx context.Context, userID uint) ([]models.ActivityEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.ActivityEntry, error)
	Delete(ctx context.Context, id uint) error
	DeleteAllForUser(ctx context.Context, userID uint) error
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns a new ActivityRepository implementation.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, entry *models.ActivityEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", entry.UserID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id uint) (*models.ActivityEntry, error) {
	var entry models.ActivityEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Activity entry", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *activityRepository) ListByUser(ctx context.Context, userID uint) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

// ListByUserAndRange returns the user's entries with start <= occurred_at < end,
// ordered by occurrence time ascending; ties break by insertion id ascending.
func (r *activityRepository) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *activityRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ActivityEntry{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteAllForUser removes every activity entry owned by the user.
func (r *activityRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ActivityEntry{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
