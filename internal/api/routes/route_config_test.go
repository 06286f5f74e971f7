package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caloreat/domain"
	"caloreat/internal/api/handlers"
	"caloreat/internal/middleware"
	"caloreat/internal/testutil"
	"caloreat/internal/utils"
	"caloreat/pkg/food"
	"caloreat/pkg/jwt"
	"caloreat/pkg/meal"
	"caloreat/pkg/nutrition"
	"caloreat/pkg/profile"
	"caloreat/pkg/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	app    *fiber.App
	jwt    jwt.JWTService
	oracle *testutil.StubOracle
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	utils.InitValidator()
	db := testutil.NewTestDB(t)
	kst := time.FixedZone("KST", 9*60*60)
	clock := utils.FixedClock{At: time.Date(2026, 10, 18, 12, 0, 0, 0, kst)}
	stub := testutil.NewStubOracle()
	jwtService := jwt.NewJWTService("test-secret", "CALOREAT")

	mealRepository := meal.NewMealRepository(db)
	profileRepository := profile.NewProfileRepository(db)
	nutritionService := nutrition.NewNutritionService(profileRepository, mealRepository, clock, kst)

	app := fiber.New()
	cfg := Config{
		App:              app,
		FoodHandler:      handlers.NewFoodHandler(food.NewFoodService(food.NewFoodRepository(db), stub, zap.NewNop()), utils.Validate),
		NutritionHandler: handlers.NewNutritionHandler(nutritionService),
		StatsHandler:     handlers.NewStatsHandler(stats.NewStatsService(mealRepository, nutritionService, clock, kst)),
		MealHandler:      handlers.NewMealHandler(meal.NewMealService(mealRepository, nil, clock, kst, zap.NewNop()), utils.Validate),
		ProfileHandler:   handlers.NewProfileHandler(profile.NewProfileService(profileRepository, clock, kst), utils.Validate),
		Middleware:       middleware.NewMiddleware(),
		JWTService:       jwtService,
	}
	cfg.Setup()
	return &testServer{app: app, jwt: jwtService, oracle: stub}
}

func (s *testServer) do(t *testing.T, method, path string, body any, userID string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if userID != "" {
		token, err := s.jwt.GenerateTokenUser(userID, domain.RoleUser)
		require.NoError(t, err)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodGet, "/api/ping", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body["message"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodGet, "/api/v1/nutrition/target", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["status"])
}

func TestResolveFood(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.NewString()
	s.oracle.SetResolved("떡볶이", "떡볶이", domain.Nutritions{Calories: 450, CarbsG: 80, ProteinG: 8, FatG: 10})

	status, body := s.do(t, http.MethodPost, "/api/v1/foods/resolve", fiber.Map{"foodname": "떡볶이"}, userID)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "떡볶이", data["foodname"])
	assert.Equal(t, 450.0, data["nutritions"].(map[string]any)["calories"])

	status, body = s.do(t, http.MethodPost, "/api/v1/foods/resolve", fiber.Map{"foodname": "ㅋㅋㅋ"}, userID)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"].(map[string]any)["nutritions"])

	status, _ = s.do(t, http.MethodPost, "/api/v1/foods/resolve", fiber.Map{}, userID)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestResolveFoodsKeepsOrder(t *testing.T) {
	s := newTestServer(t)
	s.oracle.SetResolved("김밥", "김밥", domain.Nutritions{Calories: 320, CarbsG: 50, ProteinG: 9, FatG: 8})

	status, body := s.do(t, http.MethodPost, "/api/v1/foods/resolve-batch",
		fiber.Map{"foodnames": []string{"김밥", "없는음식"}}, uuid.NewString())
	require.Equal(t, http.StatusOK, status)
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "김밥", data[0].(map[string]any)["foodname"])
	assert.Empty(t, data[1].(map[string]any)["nutritions"])
}

func TestMealLogLifecycle(t *testing.T) {
	s := newTestServer(t)
	owner := uuid.NewString()

	status, body := s.do(t, http.MethodPost, "/api/v1/meal-logs", fiber.Map{
		"meal_type": "lunch",
		"eaten_at":  "2026-10-18T12:10:00+09:00",
		"meal_items": []fiber.Map{{
			"foodname":   "김치찌개",
			"quantity":   1,
			"nutritions": fiber.Map{"calories": 400, "carbs_g": 20, "protein_g": 25, "fat_g": 22},
		}},
	}, owner)
	require.Equal(t, http.StatusCreated, status)
	id := body["data"].(map[string]any)["id"].(string)

	status, body = s.do(t, http.MethodGet, "/api/v1/stats/daily?date=2026-10-18", nil, owner)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 400.0, body["data"].(map[string]any)["totalCalories"])

	status, _ = s.do(t, http.MethodDelete, "/api/v1/meal-logs/"+id, nil, uuid.NewString())
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, http.MethodDelete, "/api/v1/meal-logs/"+id, nil, owner)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodDelete, "/api/v1/meal-logs/"+id, nil, owner)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateMealLogValidation(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.do(t, http.MethodPost, "/api/v1/meal-logs", fiber.Map{
		"meal_type":  "brunch",
		"meal_items": []fiber.Map{{"foodname": "빵", "quantity": 1}},
	}, uuid.NewString())
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStatsQueryValidation(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.NewString()

	status, _ := s.do(t, http.MethodGet, "/api/v1/stats/monthly?year=2026&month=13", nil, userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/stats/monthly?year=abc&month=1", nil, userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/stats/weekly?end_date=18-10-2026", nil, userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := s.do(t, http.MethodGet, "/api/v1/stats/weekly?end_date=2026-10-18", nil, userID)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 7.0, body["data"].(map[string]any)["divisor"])
}

func TestProfileEndpoints(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.NewString()

	status, _ := s.do(t, http.MethodGet, "/api/v1/profile", nil, userID)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodPut, "/api/v1/profile", fiber.Map{
		"gender": "male", "birthdate": "1996-01-01", "height_cm": 85, "weight_kg": 70, "goal_type": "maintain",
	}, userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := s.do(t, http.MethodPut, "/api/v1/profile", fiber.Map{
		"gender": "male", "birthdate": "1996-01-01", "height_cm": 170, "weight_kg": 70, "goal_type": "maintain",
	}, userID)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 30.0, body["data"].(map[string]any)["age"])

	status, body = s.do(t, http.MethodGet, "/api/v1/nutrition/target", nil, userID)
	require.Equal(t, http.StatusOK, status)
	target := body["data"].(map[string]any)["target"].(map[string]any)
	assert.InDelta(t, 2586.2, target["calorie"], 1e-9)

	status, body = s.do(t, http.MethodPut, "/api/v1/profile/conditions", fiber.Map{"conditions": []string{"diabetes"}}, userID)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"diabetes"}, body["data"].(map[string]any)["conditions"])

	status, body = s.do(t, http.MethodGet, "/api/v1/nutrition/advice", nil, userID)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{domain.WarningGoalCalorieUnder}, body["data"].(map[string]any)["warnings"])
	assert.Equal(t, map[string]any{
		domain.WarningGoalCalorieUnder: domain.WarningMessages[domain.WarningGoalCalorieUnder],
	}, body["data"].(map[string]any)["messages"])
}
