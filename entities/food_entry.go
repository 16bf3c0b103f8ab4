package entities

import (
	"github.com/google/uuid"
)

// FoodEntry is a single logged food. The macro columns keep the model's
// output verbatim ("12.5g", "135") — the model does not guarantee clean
// numbers, so values are parsed at aggregation time, never at storage time.
type FoodEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	CaloriesRaw string    `json:"calories"`
	ProteinRaw  string    `json:"protein"`
	CarbsRaw    string    `json:"carbs"`
	FatRaw      string    `json:"fat"`
	// MealCategory is one of "Breakfast", "Lunch", "Dinner", "Snack".
	MealCategory string `gorm:"not null" json:"meal_category"`
	// ConsumedOn is the day the entry belongs to, "2006-01-02".
	ConsumedOn string `gorm:"type:varchar(10);index;not null" json:"consumed_on"`
	PhotoURL   string `json:"photo_url,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
