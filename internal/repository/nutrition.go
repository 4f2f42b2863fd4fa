package repository

import (
	"context"
	"errors"
	"time"

	"wellspring/internal/models"

	"gorm.io/gorm"
)

// NutritionRepository defines persistence operations for nutrition entries.
type NutritionRepository interface {
	Create(ctx context.Context, entry *models.NutritionEntry) error
	GetByID(ctx context.Context, id uint) (*models.NutritionEntry, error)
	ListByUser(ctx context.Context, userID uint) ([]models.NutritionEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.NutritionEntry, error)
	Delete(ctx context.Context, id uint) error
	DeleteAllForUser(ctx context.Context, userID uint) error
}

type nutritionRepository struct {
	db *gorm.DB
}

// NewNutritionRepository returns a new NutritionRepository implementation.
func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) Create(ctx context.Context, entry *models.NutritionEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", entry.UserID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *nutritionRepository) GetByID(ctx context.Context, id uint) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Nutrition entry", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *nutritionRepository) ListByUser(ctx context.Context, userID uint) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_on ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *nutritionRepository) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_on >= ? AND occurred_on < ?", userID, start, end).
		Order("occurred_on ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *nutritionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.NutritionEntry{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteAllForUser removes every nutrition entry owned by the user.
func (r *nutritionRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.NutritionEntry{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
