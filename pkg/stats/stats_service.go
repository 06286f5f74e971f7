package stats

import (
	"context"
	"fmt"
	"time"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/internal/utils"
	"caloreat/pkg/meal"
	"caloreat/pkg/nutrition"

	"github.com/google/uuid"
)

type (
	StatsService interface {
		Daily(ctx context.Context, userID string, date string) (*domain.StatsResponse, error)
		Weekly(ctx context.Context, userID string, endDate string) (*domain.StatsResponse, error)
		Monthly(ctx context.Context, userID string, year, month int) (*domain.StatsResponse, error)
	}

	statsService struct {
		mealRepository   meal.MealRepository
		nutritionService nutrition.NutritionService
		clock            utils.Clock
		location         *time.Location
	}
)

func NewStatsService(mealRepository meal.MealRepository, nutritionService nutrition.NutritionService, clock utils.Clock, location *time.Location) StatsService {
	return &statsService{
		mealRepository:   mealRepository,
		nutritionService: nutritionService,
		clock:            clock,
		location:         location,
	}
}

func (s *statsService) Daily(ctx context.Context, userID string, date string) (*domain.StatsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	mealLogs, target, err := s.load(ctx, uid, day, day)
	if err != nil {
		return nil, err
	}
	totals := meal.Sum(mealLogs)

	return &domain.StatsResponse{
		Type:          domain.StatsTypeDaily,
		Date:          day.Format(domain.DateLayout),
		TotalCalories: domain.Round1(totals.Calories),
		Nutrients:     Averages(totals, 1),
		Goals:         NutrientGoals(target),
		TargetCalorie: target,
		DailyLogs:     dailyLogEntries(mealLogs, s.location),
		Divisor:       1,
		ShowAlert:     totals.Calories > 0,
	}, nil
}

func (s *statsService) Weekly(ctx context.Context, userID string, endDate string) (*domain.StatsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	end, err := s.parseDate(endDate)
	if err != nil {
		return nil, err
	}
	start := end.AddDate(0, 0, -(WeekDays - 1))

	mealLogs, target, err := s.load(ctx, uid, start, end)
	if err != nil {
		return nil, err
	}
	divisor, err := s.divisor(ctx, uid, WeekDays, end)
	if err != nil {
		return nil, err
	}

	res := s.windowResponse(domain.StatsTypeWeekly, end.Format(domain.DateLayout), mealLogs, target, divisor)
	res.ChartData = WeeklySeries(mealLogs, start, s.location, target)
	return res, nil
}

func (s *statsService) Monthly(ctx context.Context, userID string, year, month int) (*domain.StatsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	end := start.AddDate(0, 1, -1)

	mealLogs, target, err := s.load(ctx, uid, start, end)
	if err != nil {
		return nil, err
	}
	divisor, err := s.divisor(ctx, uid, end.Day(), end)
	if err != nil {
		return nil, err
	}

	res := s.windowResponse(domain.StatsTypeMonthly, fmt.Sprintf("%04d-%02d", year, month), mealLogs, target, divisor)
	res.ChartData = MonthlySeries(mealLogs, start, s.today(), s.location, target)
	return res, nil
}

// load fetches logs for the whole days from first to last, inclusive, and
// the user's current calorie target.
func (s *statsService) load(ctx context.Context, userID uuid.UUID, first, last time.Time) ([]*entities.MealLog, float64, error) {
	mealLogs, err := s.mealRepository.GetMealLogsByRange(ctx, userID, first, last.AddDate(0, 0, 1))
	if err != nil {
		return nil, 0, err
	}
	_, targets, err := s.nutritionService.ProfileTargets(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return mealLogs, targets.Calorie, nil
}

func (s *statsService) divisor(ctx context.Context, userID uuid.UUID, nominal int, windowEnd time.Time) (int, error) {
	first, err := s.mealRepository.GetFirstMealLogTime(ctx, userID)
	if err != nil {
		return 0, err
	}
	return Divisor(nominal, windowEnd, first, s.location), nil
}

func (s *statsService) windowResponse(statsType, label string, mealLogs []*entities.MealLog, target float64, divisor int) *domain.StatsResponse {
	totals := meal.Sum(mealLogs)
	res := &domain.StatsResponse{
		Type:          statsType,
		Date:          label,
		TotalCalories: domain.Round1(totals.Calories / float64(divisor)),
		Nutrients:     Averages(totals, divisor),
		Goals:         NutrientGoals(target),
		TargetCalorie: target,
		Divisor:       divisor,
		ShowAlert:     totals.Calories > 0,
	}
	if len(mealLogs) > 0 {
		res.Warnings = nutrition.EvaluateAverages(dailyAverage(totals, divisor))
		res.Messages = domain.MessagesFor(res.Warnings)
	}
	return res
}

func (s *statsService) parseDate(date string) (time.Time, error) {
	if date == "" {
		return s.today(), nil
	}
	day, err := time.ParseInLocation(domain.DateLayout, date, s.location)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return day, nil
}

func (s *statsService) today() time.Time {
	return utils.DateOf(s.clock.Now(), s.location)
}
