package profile

import (
	"context"

	"kaloria-backend/entities"

	"gorm.io/gorm"
)

type (
	ProfileRepository interface {
		GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error)
		ReplaceProfile(ctx context.Context, profile *entities.UserProfile) error
		DeleteProfileByUserID(ctx context.Context, userID string) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ReplaceProfile drops any existing row for the user and inserts the new one.
// Profiles are never mutated field by field.
func (r *profileRepository) ReplaceProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", profile.UserID).Delete(&entities.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
}

func (r *profileRepository) DeleteProfileByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.UserProfile{}).Error
}
