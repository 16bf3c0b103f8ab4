package entities

import (
	"github.com/google/uuid"
)

// UserProfile holds the body metrics captured at onboarding and the daily
// calorie target derived from them. Exactly one row per user; re-onboarding
// replaces the row wholesale instead of mutating it field by field.
type UserProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	WeightKg       float64   `json:"weight_kg"`
	HeightCm       float64   `json:"height_cm"`
	Age            int       `json:"age"`
	IsMale         bool      `json:"is_male"`
	ActivityFactor float64   `json:"activity_factor"`
	// Manual targets skip the body metrics above, which then stay zero.
	DailyCalorieTarget int `json:"daily_calorie_target"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
