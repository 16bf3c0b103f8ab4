package profile

import (
	"context"
	"errors"

	"kaloria-backend/domain"
	"kaloria-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		Onboard(ctx context.Context, req domain.OnboardProfileRequest, userID string) (domain.ProfileResponse, error)
		SetManualTarget(ctx context.Context, req domain.SetManualTargetRequest, userID string) (domain.ProfileResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		ClearProfile(ctx context.Context, userID string) error
	}

	profileService struct {
		profileRepository ProfileRepository
	}
)

func NewProfileService(profileRepository ProfileRepository) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
	}
}

// Onboard is the computed mode: body metrics in, Mifflin-St Jeor target out.
// Any existing profile is replaced wholesale.
func (s *profileService) Onboard(ctx context.Context, req domain.OnboardProfileRequest, userID string) (domain.ProfileResponse, error) {
	if !metricsPlausible(req.WeightKg, req.HeightCm, req.Age) {
		return domain.ProfileResponse{}, domain.ErrImplausibleMetrics
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	isMale := *req.IsMale
	profile := &entities.UserProfile{
		ID:                 uuid.New(),
		UserID:             userUUID,
		WeightKg:           req.WeightKg,
		HeightCm:           req.HeightCm,
		Age:                req.Age,
		IsMale:             isMale,
		ActivityFactor:     req.ActivityFactor,
		DailyCalorieTarget: CalculateDailyTarget(req.WeightKg, req.HeightCm, req.Age, isMale, req.ActivityFactor),
	}

	if err := s.profileRepository.ReplaceProfile(ctx, profile); err != nil {
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

// SetManualTarget is the manual mode: the target is taken as given and no
// body metrics are recorded.
func (s *profileService) SetManualTarget(ctx context.Context, req domain.SetManualTargetRequest, userID string) (domain.ProfileResponse, error) {
	if req.DailyCalorieTarget <= 0 {
		return domain.ProfileResponse{}, domain.ErrInvalidCalorieTarget
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	profile := &entities.UserProfile{
		ID:                 uuid.New(),
		UserID:             userUUID,
		DailyCalorieTarget: req.DailyCalorieTarget,
	}

	if err := s.profileRepository.ReplaceProfile(ctx, profile); err != nil {
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotSet
		}
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

// ClearProfile removes the profile so the client falls back to onboarding.
// Clearing an absent profile is a no-op.
func (s *profileService) ClearProfile(ctx context.Context, userID string) error {
	return s.profileRepository.DeleteProfileByUserID(ctx, userID)
}

func toProfileResponse(profile *entities.UserProfile) domain.ProfileResponse {
	return domain.ProfileResponse{
		ID:                 profile.ID.String(),
		WeightKg:           profile.WeightKg,
		HeightCm:           profile.HeightCm,
		Age:                profile.Age,
		IsMale:             profile.IsMale,
		ActivityFactor:     profile.ActivityFactor,
		DailyCalorieTarget: profile.DailyCalorieTarget,
		CreatedAt:          profile.CreatedAt,
	}
}
