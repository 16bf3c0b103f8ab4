package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// MealCategories is the fixed enumeration used to bucket entries within a
// day, in display order. The daily export enumerates all four.
var MealCategories = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

var (
	MessageSuccessLogFood     = "food logged successfully"
	MessageSuccessGetEntries  = "food entries retrieved successfully"
	MessageSuccessDeleteEntry = "food entry deleted successfully"
	MessageSuccessGetSummary  = "daily summary retrieved successfully"
	MessageSuccessGetHistory  = "history retrieved successfully"

	MessageFailedLogFood     = "failed to log food"
	MessageFailedGetEntries  = "failed to retrieve food entries"
	MessageFailedDeleteEntry = "failed to delete food entry"
	MessageFailedGetSummary  = "failed to retrieve daily summary"
	MessageFailedGetHistory  = "failed to retrieve history"

	ErrEmptyDescription       = errors.New("food description is empty")
	ErrEntryNotFound          = errors.New("food entry not found")
	ErrLogRequestInFlight     = errors.New("a food log request is already in progress")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
)

type (
	// LogFoodRequest is one "add food" action: a free-text description the
	// model turns into entries, with the meal bucket and day chosen by the
	// user. The image rides along as an optional multipart part.
	LogFoodRequest struct {
		Description  string                `json:"description" form:"description" validate:"required"`
		MealCategory string                `json:"meal_category" form:"meal_category" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
		Date         string                `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
		Image        *multipart.FileHeader `json:"-" form:"-"`
	}

	FoodEntryResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Calories     string    `json:"calories"`
		Protein      string    `json:"protein"`
		Carbs        string    `json:"carbs"`
		Fat          string    `json:"fat"`
		MealCategory string    `json:"meal_category"`
		ConsumedOn   string    `json:"consumed_on"`
		PhotoURL     string    `json:"photo_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	LogFoodResponse struct {
		Entries []FoodEntryResponse `json:"entries"`
	}

	// MacroTotals are the parsed sums for one day. Values come from the raw
	// macro strings via the extractor, so unparseable fields count as zero.
	MacroTotals struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}

	DailySummaryResponse struct {
		Date          string              `json:"date"`
		Totals        MacroTotals         `json:"totals"`
		CalorieTarget int                 `json:"calorie_target"`
		// ProgressRatio is clamped to [0,1]; 0 when no target is set.
		ProgressRatio float64             `json:"progress_ratio"`
		Entries       []FoodEntryResponse `json:"entries"`
	}

	HistoryDay struct {
		Date    string              `json:"date"`
		Totals  MacroTotals         `json:"totals"`
		Entries []FoodEntryResponse `json:"entries"`
	}

	HistoryResponse struct {
		Days []HistoryDay `json:"days"`
	}
)
