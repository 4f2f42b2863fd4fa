package repository

import (
	"context"
	"errors"
	"time"

	"wellspring/internal/models"

	"gorm.io/gorm"
)

// SleepRepository defines persistence operations for sleep entries.
type SleepRepository interface {
	Create(ctx context.Context, entry *models.SleepEntry) error
	GetByID(ctx context.Context, id uint) (*models.SleepEntry, error)
	ListByUser(ctx context.Context, userID uint) ([]models.SleepEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.SleepEntry, error)
	Delete(ctx context.Context, id uint) error
	DeleteAllForUser(ctx context.Context, userID uint) error
}

type sleepRepository struct {
	db *gorm.DB
}

// NewSleepRepository returns a new SleepRepository implementation.
func NewSleepRepository(db *gorm.DB) SleepRepository {
	return &sleepRepository{db: db}
}

func (r *sleepRepository) Create(ctx context.Context, entry *models.SleepEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", entry.UserID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sleepRepository) GetByID(ctx context.Context, id uint) (*models.SleepEntry, error) {
	var entry models.SleepEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Sleep entry", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *sleepRepository) ListByUser(ctx context.Context, userID uint) ([]models.SleepEntry, error) {
	var entries []models.SleepEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_on ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *sleepRepository) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.SleepEntry, error) {
	var entries []models.SleepEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_on >= ? AND occurred_on < ?", userID, start, end).
		Order("occurred_on ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *sleepRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.SleepEntry{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteAllForUser removes every sleep entry owned by the user.
func (r *sleepRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SleepEntry{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
