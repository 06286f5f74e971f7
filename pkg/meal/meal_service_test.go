package meal

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/internal/testutil"
	"caloreat/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeStorage struct {
	uploaded []string
	deleted  []string
	failOn   int
}

func (f *fakeStorage) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	if f.failOn > 0 && len(f.uploaded)+1 == f.failOn {
		return "", errors.New("upload failed")
	}
	key := folder + "/" + fileName + ".jpg"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	return link[len("https://cdn.test/"):]
}

var (
	seoul = time.FixedZone("KST", 9*60*60)
	now   = time.Date(2026, 5, 5, 13, 0, 0, 0, seoul)
)

func setup(t *testing.T) (*gorm.DB, *fakeStorage, MealService) {
	db := testutil.NewTestDB(t)
	s3 := &fakeStorage{}
	return db, s3, NewMealService(NewMealRepository(db), s3, utils.FixedClock{At: now}, seoul, zap.NewNop())
}

func lunch(at time.Time) domain.CreateMealLogRequest {
	return domain.CreateMealLogRequest{
		MealType: domain.MealTypeLunch,
		EatenAt:  at,
		MealItems: []domain.MealItemRequest{
			{FoodName: "김치찌개", Quantity: 1, Nutritions: domain.Nutritions{Calories: 400, CarbsG: 20, ProteinG: 25, FatG: 22}},
			{FoodName: "공기밥", Quantity: 1.5, Nutritions: domain.Nutritions{Calories: 300, CarbsG: 65, ProteinG: 5, FatG: 1}},
		},
	}
}

func TestCreateMealLog(t *testing.T) {
	db, s3, svc := setup(t)
	userID := uuid.NewString()

	req := lunch(time.Date(2026, 5, 4, 12, 30, 0, 0, seoul))
	req.Images = []*multipart.FileHeader{{Filename: "a.jpg"}, {Filename: "b.jpg"}}

	res, err := svc.CreateMealLog(context.Background(), req, userID)
	require.NoError(t, err)
	assert.Len(t, res.MealItems, 2)
	assert.Len(t, res.ImageURLs, 2)
	assert.Len(t, s3.uploaded, 2)
	assert.True(t, res.EatenAt.Equal(req.EatenAt))

	var items int64
	require.NoError(t, db.Model(&entities.MealItem{}).Count(&items).Error)
	assert.Equal(t, int64(2), items)
}

func TestCreateMealLog_RejectsBadItems(t *testing.T) {
	_, _, svc := setup(t)
	userID := uuid.NewString()

	req := lunch(now)
	req.MealItems[0].Quantity = 0
	_, err := svc.CreateMealLog(context.Background(), req, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	req = lunch(now)
	req.MealItems[1].Nutritions.FatG = -3
	_, err = svc.CreateMealLog(context.Background(), req, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidNutritions)
}

func TestCreateMealLog_UploadFailureCleansUp(t *testing.T) {
	db, s3, svc := setup(t)
	s3.failOn = 2

	req := lunch(now)
	req.Images = []*multipart.FileHeader{{Filename: "a.jpg"}, {Filename: "b.jpg"}}
	_, err := svc.CreateMealLog(context.Background(), req, uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, s3.uploaded, s3.deleted)

	var logs int64
	require.NoError(t, db.Model(&entities.MealLog{}).Count(&logs).Error)
	assert.Equal(t, int64(0), logs)
}

func TestGetMealLogsByDate_UsesLocalDayBoundaries(t *testing.T) {
	_, _, svc := setup(t)
	ctx := context.Background()
	userID := uuid.NewString()

	// 00:30 KST on May 5 is still May 4 in UTC.
	for _, at := range []time.Time{
		time.Date(2026, 5, 4, 23, 59, 0, 0, seoul),
		time.Date(2026, 5, 5, 0, 30, 0, 0, seoul),
		time.Date(2026, 5, 5, 19, 0, 0, 0, seoul),
		time.Date(2026, 5, 6, 0, 0, 0, 0, seoul),
	} {
		_, err := svc.CreateMealLog(ctx, lunch(at), userID)
		require.NoError(t, err)
	}
	_, err := svc.CreateMealLog(ctx, lunch(time.Date(2026, 5, 5, 12, 0, 0, 0, seoul)), uuid.NewString())
	require.NoError(t, err)

	logs, err := svc.GetMealLogsByDate(ctx, "2026-05-05", userID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 0, logs[0].EatenAt.Hour())
	assert.Equal(t, 19, logs[1].EatenAt.Hour())

	_, err = svc.GetMealLogsByDate(ctx, "05/05/2026", userID)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestMealLogDefaultsToClockToday(t *testing.T) {
	_, _, svc := setup(t)
	ctx := context.Background()
	userID := uuid.NewString()

	created, err := svc.CreateMealLog(ctx, lunch(time.Time{}), userID)
	require.NoError(t, err)
	assert.True(t, created.EatenAt.Equal(now))

	_, err = svc.CreateMealLog(ctx, lunch(now.AddDate(0, 0, -1)), userID)
	require.NoError(t, err)

	logs, err := svc.GetMealLogsByDate(ctx, "", userID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, created.ID, logs[0].ID)
}

func TestDeleteMealLog(t *testing.T) {
	db, s3, svc := setup(t)
	ctx := context.Background()
	owner := uuid.NewString()

	req := lunch(now)
	req.Images = []*multipart.FileHeader{{Filename: "a.jpg"}}
	created, err := svc.CreateMealLog(ctx, req, owner)
	require.NoError(t, err)

	err = svc.DeleteMealLog(ctx, created.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	require.NoError(t, svc.DeleteMealLog(ctx, created.ID, owner))
	assert.Equal(t, s3.uploaded, s3.deleted)

	var items int64
	require.NoError(t, db.Model(&entities.MealItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), items)

	err = svc.DeleteMealLog(ctx, created.ID, owner)
	assert.ErrorIs(t, err, domain.ErrMealLogNotFound)
}
