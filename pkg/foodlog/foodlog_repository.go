package foodlog

import (
	"context"

	"kaloria-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodlogRepository interface {
		AddEntries(ctx context.Context, entries []*entities.FoodEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error)
		DeleteEntry(ctx context.Context, id string) error
		GetEntriesByDate(ctx context.Context, userID string, date string) ([]*entities.FoodEntry, error)
		GetAllEntries(ctx context.Context, userID string) ([]*entities.FoodEntry, error)
	}

	foodlogRepository struct {
		db *gorm.DB
	}
)

func NewFoodlogRepository(db *gorm.DB) FoodlogRepository {
	return &foodlogRepository{db: db}
}

// AddEntries inserts all entries from one model response in a single
// transaction; a failed request never partially applies.
func (r *foodlogRepository) AddEntries(ctx context.Context, entries []*entities.FoodEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(entries).Error
}

func (r *foodlogRepository) GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error) {
	var entry entities.FoodEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodlogRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodEntry{}).Error
}

func (r *foodlogRepository) GetEntriesByDate(ctx context.Context, userID string, date string) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed_on = ?", userID, date).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetAllEntries returns the full log, most recent day first and insertion
// order within a day. The export and history surfaces rely on this ordering.
func (r *foodlogRepository) GetAllEntries(ctx context.Context, userID string) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("consumed_on desc, created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
