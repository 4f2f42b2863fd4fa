package repository

import (
	"context"
	"errors"
	"time"

	"wellspring/internal/models"

	"gorm.io/gorm"
)

// MoodRepository defines persistence operations for mood entries.
type MoodRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) error
	GetByID(ctx context.Context, id uint) (*models.MoodEntry, error)
	ListByUser(ctx context.Context, userID uint) ([]models.MoodEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.MoodEntry, error)
	Delete(ctx context.Context, id uint) error
	DeleteAllForUser(ctx context.Context, userID uint) error
}

type moodRepository struct {
	db *gorm.DB
}

// NewMoodRepository returns a new MoodRepository implementation.
func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(ctx context.Context, entry *models.MoodEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", entry.UserID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *moodRepository) GetByID(ctx context.Context, id uint) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Mood entry", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *moodRepository) ListByUser(ctx context.Context, userID uint) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_on ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *moodRepository) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_on >= ? AND occurred_on < ?", userID, start, end).
		Order("occurred_on ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *moodRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.MoodEntry{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteAllForUser removes every mood entry owned by the user.
func (r *moodRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.MoodEntry{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
