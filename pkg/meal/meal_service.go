package meal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/internal/utils"
	"caloreat/internal/utils/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const imageFolder = "meal-logs"

type (
	MealService interface {
		CreateMealLog(ctx context.Context, req domain.CreateMealLogRequest, userID string) (*domain.MealLogResponse, error)
		GetMealLogsByDate(ctx context.Context, date string, userID string) ([]domain.MealLogResponse, error)
		DeleteMealLog(ctx context.Context, id string, userID string) error
	}

	mealService struct {
		mealRepository MealRepository
		s3             storage.AwsS3
		clock          utils.Clock
		location       *time.Location
		logger         *zap.Logger
	}
)

func NewMealService(mealRepository MealRepository, s3 storage.AwsS3, clock utils.Clock, location *time.Location, logger *zap.Logger) MealService {
	return &mealService{
		mealRepository: mealRepository,
		s3:             s3,
		clock:          clock,
		location:       location,
		logger:         logger.Named("meal"),
	}
}

func (s *mealService) CreateMealLog(ctx context.Context, req domain.CreateMealLogRequest, userID string) (*domain.MealLogResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items := make([]*entities.MealItem, 0, len(req.MealItems))
	for _, item := range req.MealItems {
		if item.Quantity <= 0 || math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) {
			return nil, domain.ErrInvalidQuantity
		}
		if !nonNegative(item.Nutritions) {
			return nil, domain.ErrInvalidNutritions
		}
		items = append(items, &entities.MealItem{
			FoodName:   item.FoodName,
			Quantity:   item.Quantity,
			Nutritions: item.Nutritions,
		})
	}

	eatenAt := req.EatenAt
	if eatenAt.IsZero() {
		eatenAt = s.clock.Now()
	}

	mealLog := &entities.MealLog{
		ID:        uuid.New(),
		UserID:    uid,
		MealType:  req.MealType,
		EatenAt:   eatenAt,
		ImageURLs: []string{},
		MealItems: items,
	}

	var objectKeys []string
	for i, image := range req.Images {
		key, err := s.s3.UploadFile(ctx, fmt.Sprintf("meal-%s-%d", mealLog.ID, i), image, imageFolder, storage.AllowImage...)
		if err != nil {
			s.removeObjects(objectKeys)
			return nil, err
		}
		objectKeys = append(objectKeys, key)
		mealLog.ImageURLs = append(mealLog.ImageURLs, s.s3.GetPublicLinkKey(key))
	}

	if err := s.mealRepository.CreateMealLog(ctx, mealLog); err != nil {
		s.removeObjects(objectKeys)
		return nil, err
	}

	res := s.toResponse(mealLog)
	return &res, nil
}

func (s *mealService) GetMealLogsByDate(ctx context.Context, date string, userID string) ([]domain.MealLogResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	day := utils.DateOf(s.clock.Now(), s.location)
	if date != "" {
		if day, err = time.ParseInLocation(domain.DateLayout, date, s.location); err != nil {
			return nil, domain.ErrInvalidDate
		}
	}

	mealLogs, err := s.mealRepository.GetMealLogsByRange(ctx, uid, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealLogResponse, 0, len(mealLogs))
	for _, m := range mealLogs {
		res = append(res, s.toResponse(m))
	}
	return res, nil
}

func (s *mealService) DeleteMealLog(ctx context.Context, id string, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	logID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	mealLog, err := s.mealRepository.GetMealLogByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealLogNotFound
		}
		return err
	}
	if mealLog.UserID != uid {
		return domain.ErrUserNotAllowed
	}

	if err := s.mealRepository.DeleteMealLog(ctx, logID); err != nil {
		return err
	}

	keys := make([]string, 0, len(mealLog.ImageURLs))
	for _, link := range mealLog.ImageURLs {
		keys = append(keys, s.s3.GetObjectKeyFromLink(link))
	}
	s.removeObjects(keys)
	return nil
}

// removeObjects is best effort; an orphaned object only costs storage.
func (s *mealService) removeObjects(keys []string) {
	for _, key := range keys {
		if err := s.s3.DeleteFile(context.Background(), key); err != nil {
			s.logger.Warn("failed to delete meal image", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *mealService) toResponse(m *entities.MealLog) domain.MealLogResponse {
	items := make([]domain.MealItemResponse, 0, len(m.MealItems))
	for _, item := range m.MealItems {
		items = append(items, domain.MealItemResponse{
			ID:         item.ID.String(),
			FoodName:   item.FoodName,
			Quantity:   item.Quantity,
			Nutritions: item.Nutritions,
		})
	}
	urls := m.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	return domain.MealLogResponse{
		ID:        m.ID.String(),
		MealType:  m.MealType,
		EatenAt:   m.EatenAt.In(s.location),
		ImageURLs: urls,
		MealItems: items,
		CreatedAt: m.CreatedAt,
	}
}

func nonNegative(n domain.Nutritions) bool {
	values := []float64{n.Calories, n.CarbsG, n.ProteinG, n.FatG,
		domain.Value(n.SugarG), domain.Value(n.FiberG), domain.Value(n.SodiumMg),
		domain.Value(n.CholesterolMg), domain.Value(n.SaturatedFatG)}
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for _, v := range n.Micronutrients {
		if v < 0 || math.IsNaN(v) {
			return false
		}
	}
	return true
}
