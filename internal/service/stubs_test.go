package service

import (
	"context"
	"time"

	"wellspring/internal/models"
)

// Func-field stubs keep each test's behavior next to its assertions.

type stubUserRepo struct {
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	create        func(ctx context.Context, user *models.User) error
	update        func(ctx context.Context, user *models.User) error
	deleteCascade func(ctx context.Context, id uint) error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.update(ctx, user)
}

func (s *stubUserRepo) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascade(ctx, id)
}

type stubActivityRepo struct {
	create             func(ctx context.Context, entry *models.ActivityEntry) error
	getByID            func(ctx context.Context, id uint) (*models.ActivityEntry, error)
	listByUser         func(ctx context.Context, userID uint) ([]models.ActivityEntry, error)
	listByUserAndRange func(ctx context.Context, userID uint, start, end time.Time) ([]models.ActivityEntry, error)
	delete             func(ctx context.Context, id uint) error
	deleteAllForUser   func(ctx context.Context, userID uint) error
}

func (s *stubActivityRepo) Create(ctx context.Context, entry *models.ActivityEntry) error {
	return s.create(ctx, entry)
}

func (s *stubActivityRepo) GetByID(ctx context.Context, id uint) (*models.ActivityEntry, error) {
	return s.getByID(ctx, id)
}

func (s *stubActivityRepo) ListByUser(ctx context.Context, userID uint) ([]models.ActivityEntry, error) {
	return s.listByUser(ctx, userID)
}

func (s *stubActivityRepo) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.ActivityEntry, error) {
	return s.listByUserAndRange(ctx, userID, start, end)
}

func (s *stubActivityRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

func (s *stubActivityRepo) DeleteAllForUser(ctx context.Context, userID uint) error {
	return s.deleteAllForUser(ctx, userID)
}

type stubNutritionRepo struct {
	create             func(ctx context.Context, entry *models.NutritionEntry) error
	getByID            func(ctx context.Context, id uint) (*models.NutritionEntry, error)
	listByUser         func(ctx context.Context, userID uint) ([]models.NutritionEntry, error)
	listByUserAndRange func(ctx context.Context, userID uint, start, end time.Time) ([]models.NutritionEntry, error)
	delete             func(ctx context.Context, id uint) error
	deleteAllForUser   func(ctx context.Context, userID uint) error
}

func (s *stubNutritionRepo) Create(ctx context.Context, entry *models.NutritionEntry) error {
	return s.create(ctx, entry)
}

func (s *stubNutritionRepo) GetByID(ctx context.Context, id uint) (*models.NutritionEntry, error) {
	return s.getByID(ctx, id)
}

func (s *stubNutritionRepo) ListByUser(ctx context.Context, userID uint) ([]models.NutritionEntry, error) {
	return s.listByUser(ctx, userID)
}

func (s *stubNutritionRepo) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.NutritionEntry, error) {
	return s.listByUserAndRange(ctx, userID, start, end)
}

func (s *stubNutritionRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

func (s *stubNutritionRepo) DeleteAllForUser(ctx context.Context, userID uint) error {
	return s.deleteAllForUser(ctx, userID)
}

type stubSleepRepo struct {
	create             func(ctx context.Context, entry *models.SleepEntry) error
	getByID            func(ctx context.Context, id uint) (*models.SleepEntry, error)
	listByUser         func(ctx context.Context, userID uint) ([]models.SleepEntry, error)
	listByUserAndRange func(ctx context.Context, userID uint, start, end time.Time) ([]models.SleepEntry, error)
	delete             func(ctx context.Context, id uint) error
	deleteAllForUser   func(ctx context.Context, userID uint) error
}

func (s *stubSleepRepo) Create(ctx context.Context, entry *models.SleepEntry) error {
	return s.create(ctx, entry)
}

func (s *stubSleepRepo) GetByID(ctx context.Context, id uint) (*models.SleepEntry, error) {
	return s.getByID(ctx, id)
}

func (s *stubSleepRepo) ListByUser(ctx context.Context, userID uint) ([]models.SleepEntry, error) {
	return s.listByUser(ctx, userID)
}

func (s *stubSleepRepo) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.SleepEntry, error) {
	return s.listByUserAndRange(ctx, userID, start, end)
}

func (s *stubSleepRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

func (s *stubSleepRepo) DeleteAllForUser(ctx context.Context, userID uint) error {
	return s.deleteAllForUser(ctx, userID)
}

type stubMoodRepo struct {
	create             func(ctx context.Context, entry *models.MoodEntry) error
	getByID            func(ctx context.Context, id uint) (*models.MoodEntry, error)
	listByUser         func(ctx context.Context, userID uint) ([]models.MoodEntry, error)
	listByUserAndRange func(ctx context.Context, userID uint, start, end time.Time) ([]models.MoodEntry, error)
	delete             func(ctx context.Context, id uint) error
	deleteAllForUser   func(ctx context.Context, userID uint) error
}

func (s *stubMoodRepo) Create(ctx context.Context, entry *models.MoodEntry) error {
	return s.create(ctx, entry)
}

func (s *stubMoodRepo) GetByID(ctx context.Context, id uint) (*models.MoodEntry, error) {
	return s.getByID(ctx, id)
}

func (s *stubMoodRepo) ListByUser(ctx context.Context, userID uint) ([]models.MoodEntry, error) {
	return s.listByUser(ctx, userID)
}

func (s *stubMoodRepo) ListByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.MoodEntry, error) {
	return s.listByUserAndRange(ctx, userID, start, end)
}

func (s *stubMoodRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

func (s *stubMoodRepo) DeleteAllForUser(ctx context.Context, userID uint) error {
	return s.deleteAllForUser(ctx, userID)
}
