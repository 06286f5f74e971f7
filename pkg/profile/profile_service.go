package profile

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		UpsertProfile(ctx context.Context, req domain.UpsertProfileRequest, userID string) (*domain.ProfileResponse, error)
		GetProfile(ctx context.Context, userID string) (*domain.ProfileResponse, error)
		UpdateConditions(ctx context.Context, req domain.UpdateConditionsRequest, userID string) (*domain.ConditionsResponse, error)
		GetConditions(ctx context.Context, userID string) (*domain.ConditionsResponse, error)
	}

	profileService struct {
		profileRepository ProfileRepository
		clock             utils.Clock
		location          *time.Location
	}
)

func NewProfileService(profileRepository ProfileRepository, clock utils.Clock, location *time.Location) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		clock:             clock,
		location:          location,
	}
}

func (s *profileService) UpsertProfile(ctx context.Context, req domain.UpsertProfileRequest, userID string) (*domain.ProfileResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	birthdate, err := time.Parse(domain.DateLayout, req.Birthdate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	now := s.clock.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if birthdate.After(today) ||
		req.HeightCm <= domain.MinHeightCm || req.HeightCm > domain.MaxHeightCm ||
		req.WeightKg <= domain.MinWeightKg || req.WeightKg > domain.MaxWeightKg {
		return nil, domain.ErrInvalidProfile
	}

	profile := &entities.UserProfile{
		UserID:    uid,
		Gender:    req.Gender,
		Birthdate: &birthdate,
		HeightCm:  &req.HeightCm,
		WeightKg:  &req.WeightKg,
		GoalType:  req.GoalType,
	}
	if err := s.profileRepository.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.ProfileResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	profile, err := s.profileRepository.GetProfileByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	res := &domain.ProfileResponse{
		Gender:   profile.Gender,
		GoalType: profile.GoalType,
	}
	if profile.Birthdate != nil {
		res.Birthdate = *profile.Birthdate
		res.Age = utils.Age(*profile.Birthdate, utils.DateOf(s.clock.Now(), s.location))
	}
	if profile.HeightCm != nil {
		res.HeightCm = *profile.HeightCm
	}
	if profile.WeightKg != nil {
		res.WeightKg = *profile.WeightKg
	}
	return res, nil
}

func (s *profileService) UpdateConditions(ctx context.Context, req domain.UpdateConditionsRequest, userID string) (*domain.ConditionsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	conditions := make([]string, 0, len(req.Conditions))
	for _, c := range req.Conditions {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || slices.Contains(conditions, c) {
			continue
		}
		conditions = append(conditions, c)
	}

	if err := s.profileRepository.ReplaceConditions(ctx, uid, conditions); err != nil {
		return nil, err
	}
	return s.GetConditions(ctx, userID)
}

func (s *profileService) GetConditions(ctx context.Context, userID string) (*domain.ConditionsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	conditions, err := s.profileRepository.GetConditionsByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if conditions == nil {
		conditions = []string{}
	}
	return &domain.ConditionsResponse{Conditions: conditions}, nil
}
