package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProfile = "profile created successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessDeleteProfile = "profile cleared successfully"
	MessageSuccessSetTarget     = "calorie target set successfully"

	MessageFailedCreateProfile = "failed to create profile"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedDeleteProfile = "failed to clear profile"
	MessageFailedSetTarget     = "failed to set calorie target"

	ErrProfileNotSet        = errors.New("profile not set")
	ErrImplausibleMetrics   = errors.New("body metrics out of plausible range")
	ErrInvalidCalorieTarget = errors.New("calorie target must be positive")
)

type (
	// OnboardProfileRequest carries the body metrics for the computed
	// onboarding mode. ActivityFactor is one of the four fixed tiers.
	OnboardProfileRequest struct {
		WeightKg       float64 `json:"weight_kg" validate:"required,gt=0"`
		HeightCm       float64 `json:"height_cm" validate:"required,gt=0"`
		Age            int     `json:"age" validate:"required,gt=0"`
		IsMale         *bool   `json:"is_male" validate:"required"`
		ActivityFactor float64 `json:"activity_factor" validate:"required,oneof=1.2 1.375 1.55 1.725"`
	}

	// SetManualTargetRequest is the manual onboarding mode: the user supplies
	// the daily target directly and no body metrics are recorded.
	SetManualTargetRequest struct {
		DailyCalorieTarget int `json:"daily_calorie_target" validate:"required,gt=0"`
	}

	ProfileResponse struct {
		ID                 string    `json:"id"`
		WeightKg           float64   `json:"weight_kg"`
		HeightCm           float64   `json:"height_cm"`
		Age                int       `json:"age"`
		IsMale             bool      `json:"is_male"`
		ActivityFactor     float64   `json:"activity_factor"`
		DailyCalorieTarget int       `json:"daily_calorie_target"`
		CreatedAt          time.Time `json:"created_at"`
	}
)
