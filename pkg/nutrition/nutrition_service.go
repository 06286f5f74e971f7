package nutrition

import (
	"context"
	"errors"
	"time"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/internal/utils"
	"caloreat/pkg/meal"
	"caloreat/pkg/profile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NutritionService interface {
		Target(ctx context.Context, userID string) (*domain.TargetResponse, error)
		Advice(ctx context.Context, userID string) (*domain.NutritionAdviceResponse, error)
		// ProfileTargets loads the user's profile and returns it with the
		// targets computed for today. The profile is nil when none exists.
		ProfileTargets(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, domain.Targets, error)
	}

	nutritionService struct {
		profileRepository profile.ProfileRepository
		mealRepository    meal.MealRepository
		clock             utils.Clock
		location          *time.Location
	}
)

func NewNutritionService(profileRepository profile.ProfileRepository, mealRepository meal.MealRepository, clock utils.Clock, location *time.Location) NutritionService {
	return &nutritionService{
		profileRepository: profileRepository,
		mealRepository:    mealRepository,
		clock:             clock,
		location:          location,
	}
}

func (s *nutritionService) Target(ctx context.Context, userID string) (*domain.TargetResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	_, targets, err := s.ProfileTargets(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &domain.TargetResponse{Target: targets}, nil
}

func (s *nutritionService) Advice(ctx context.Context, userID string) (*domain.NutritionAdviceResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	p, targets, err := s.ProfileTargets(ctx, uid)
	if err != nil {
		return nil, err
	}

	conditions, err := s.profileRepository.GetConditionsByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	today := utils.DateOf(s.clock.Now(), s.location)
	mealLogs, err := s.mealRepository.GetMealLogsByRange(ctx, uid, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	intake := meal.Sum(mealLogs).Intake()

	warnings := Evaluate(GoalOf(p), conditions, intake, targets)
	return &domain.NutritionAdviceResponse{
		Target:   targets,
		Current:  intake,
		Warnings: warnings,
		Messages: domain.MessagesFor(warnings),
	}, nil
}

func (s *nutritionService) ProfileTargets(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, domain.Targets, error) {
	p, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Targets{}, err
		}
		p = nil
	}
	return p, ComputeTargets(p, utils.DateOf(s.clock.Now(), s.location)), nil
}
