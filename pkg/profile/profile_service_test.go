package profile

import (
	"context"
	"testing"
	"time"

	"caloreat/domain"
	"caloreat/internal/testutil"
	"caloreat/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) ProfileService {
	db := testutil.NewTestDB(t)
	clock := utils.FixedClock{At: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewProfileService(NewProfileRepository(db), clock, time.UTC)
}

func validRequest() domain.UpsertProfileRequest {
	return domain.UpsertProfileRequest{
		Gender:    domain.GenderFemale,
		Birthdate: "1996-03-11",
		HeightCm:  162,
		WeightKg:  55,
		GoalType:  domain.GoalLoss,
	}
}

func TestUpsertProfile(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	userID := uuid.NewString()

	res, err := svc.UpsertProfile(ctx, validRequest(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.GenderFemale, res.Gender)
	assert.Equal(t, 29, res.Age)
	assert.Equal(t, 162.0, res.HeightCm)

	req := validRequest()
	req.WeightKg = 52
	req.GoalType = domain.GoalMaintain
	res, err = svc.UpsertProfile(ctx, req, userID)
	require.NoError(t, err)
	assert.Equal(t, 52.0, res.WeightKg)
	assert.Equal(t, domain.GoalMaintain, res.GoalType)
}

func TestUpsertProfile_RejectsInvalidInput(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.UpsertProfileRequest)
		userID string
		want   error
	}{
		{"bad user id", func(*domain.UpsertProfileRequest) {}, "not-a-uuid", domain.ErrParseUUID},
		{"bad date", func(r *domain.UpsertProfileRequest) { r.Birthdate = "11/03/1996" }, uuid.NewString(), domain.ErrInvalidDate},
		{"future birthdate", func(r *domain.UpsertProfileRequest) { r.Birthdate = "2027-01-01" }, uuid.NewString(), domain.ErrInvalidProfile},
		{"too short", func(r *domain.UpsertProfileRequest) { r.HeightCm = 90 }, uuid.NewString(), domain.ErrInvalidProfile},
		{"too heavy", func(r *domain.UpsertProfileRequest) { r.WeightKg = 651 }, uuid.NewString(), domain.ErrInvalidProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.UpsertProfile(ctx, req, tt.userID)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := newService(t)
	_, err := svc.GetProfile(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestUpdateConditions_ReplacesSet(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	userID := uuid.NewString()

	empty, err := svc.GetConditions(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, empty.Conditions)

	res, err := svc.UpdateConditions(ctx, domain.UpdateConditionsRequest{
		Conditions: []string{"Diabetes", "hypertension", " diabetes "},
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"diabetes", "hypertension"}, res.Conditions)

	res, err = svc.UpdateConditions(ctx, domain.UpdateConditionsRequest{
		Conditions: []string{"hyperlipidemia"},
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"hyperlipidemia"}, res.Conditions)

	res, err = svc.UpdateConditions(ctx, domain.UpdateConditionsRequest{}, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Conditions)
}
