package nutrition

import (
	"math/rand"
	"testing"
	"time"

	"caloreat/domain"
	"caloreat/entities"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestComputeTargets_ReferenceProfile(t *testing.T) {
	p := &entities.UserProfile{
		Gender:    domain.GenderMale,
		Birthdate: date(1996, 1, 1),
		WeightKg:  ptr(70),
		HeightCm:  ptr(170),
		GoalType:  domain.GoalMaintain,
	}

	assert.InDelta(t, 1668.5, BMR(domain.GenderMale, 70, 170, 30), 1e-9)
	assert.InDelta(t, 2586.175, TDEE(1668.5, ActivityModerate), 1e-9)

	got := ComputeTargets(p, today)
	assert.InDelta(t, 2586.2, got.Calorie, 1e-9)
	assert.InDelta(t, 323.3, got.Carb, 1e-9)
	assert.InDelta(t, 161.6, got.Protein, 1e-9)
	assert.InDelta(t, 71.8, got.Fat, 1e-9)
}

func TestComputeTargets_NilProfileUsesBaseline(t *testing.T) {
	got := ComputeTargets(nil, today)
	assert.Equal(t, domain.Targets{Calorie: 2000, Carb: 250, Protein: 125, Fat: 55.6}, got)
}

func TestComputeTargets_InvalidFieldsFallBackToDefaults(t *testing.T) {
	reference := ComputeTargets(&entities.UserProfile{
		Gender:   domain.GenderMale,
		WeightKg: ptr(70),
		HeightCm: ptr(170),
		GoalType: domain.GoalMaintain,
	}, today)

	tests := []struct {
		name    string
		profile *entities.UserProfile
	}{
		{"empty profile", &entities.UserProfile{}},
		{"unknown gender and goal", &entities.UserProfile{Gender: "other", GoalType: "bulk"}},
		{"out of range body", &entities.UserProfile{WeightKg: ptr(10), HeightCm: ptr(400)}},
		{"birthdate in the future", &entities.UserProfile{Birthdate: date(2030, 1, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, reference, ComputeTargets(tt.profile, today))
		})
	}
}

func TestComputeTargets_GoalAdjustment(t *testing.T) {
	base := entities.UserProfile{Gender: domain.GenderFemale, Birthdate: date(1990, 5, 5), WeightKg: ptr(60), HeightCm: ptr(165)}

	loss, maintain, gain := base, base, base
	loss.GoalType = domain.GoalLoss
	maintain.GoalType = domain.GoalMaintain
	gain.GoalType = domain.GoalGain

	m := ComputeTargets(&maintain, today).Calorie
	assert.InDelta(t, m-500, ComputeTargets(&loss, today).Calorie, 0.11)
	assert.InDelta(t, m+500, ComputeTargets(&gain, today).Calorie, 0.11)
}

func TestComputeTargets_DeterministicAndMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	genders := []string{domain.GenderMale, domain.GenderFemale}
	goals := []string{domain.GoalLoss, domain.GoalMaintain, domain.GoalGain}

	for i := 0; i < 200; i++ {
		p := entities.UserProfile{
			Gender:    genders[r.Intn(2)],
			GoalType:  goals[r.Intn(3)],
			Birthdate: date(1950+r.Intn(55), time.Month(1+r.Intn(12)), 1+r.Intn(28)),
			WeightKg:  ptr(40 + r.Float64()*100),
			HeightCm:  ptr(140 + r.Float64()*60),
		}

		first := ComputeTargets(&p, today)
		assert.Equal(t, first, ComputeTargets(&p, today))

		heavier := p
		heavier.WeightKg = ptr(*p.WeightKg + 1)
		assert.GreaterOrEqual(t, ComputeTargets(&heavier, today).Calorie, first.Calorie)

		taller := p
		taller.HeightCm = ptr(*p.HeightCm + 1)
		assert.GreaterOrEqual(t, ComputeTargets(&taller, today).Calorie, first.Calorie)
	}
}

func TestTDEE_UnknownLevelIsModerate(t *testing.T) {
	assert.Equal(t, TDEE(1500, ActivityModerate), TDEE(1500, ActivityLevel("couch")))
	assert.Less(t, TDEE(1500, ActivitySedentary), TDEE(1500, ActivityVeryActive))
}
