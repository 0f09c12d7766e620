package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ─── BMI ─────────────────────────────────────────────────────────────── */

func TestBMI_Formula(t *testing.T) {
	r, err := BMI(170, 65)
	require.NoError(t, err)
	assert.Equal(t, 65/(1.7*1.7), r.BMI)
	assert.Equal(t, Normal, r.Category)
	assert.InDelta(t, 53.465, r.HealthyMinKG, 1e-6)
	assert.InDelta(t, 69.071, r.HealthyMaxKG, 1e-6)
	assert.Zero(t, r.ToGainKG)
	assert.Zero(t, r.ToLoseKG)
}

// TestClassifyBMI_Boundaries pins the closed-open bands. A 200 cm height makes
// the boundary BMIs exact: 74/4 = 18.5, 96/4 = 24, 112/4 = 28.
func TestClassifyBMI_Boundaries(t *testing.T) {
	cases := []struct {
		weight float64
		want   BMICategory
	}{
		{73.9, Underweight},
		{74, Normal},
		{95.9, Normal},
		{96, Overweight},
		{111.9, Overweight},
		{112, Obese},
	}
	for _, tc := range cases {
		r, err := BMI(200, tc.weight)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.Category, "weight %v -> bmi %v", tc.weight, r.BMI)
	}
}

func TestBMIGauge(t *testing.T) {
	assert.Equal(t, 0, BMIGauge(10))
	assert.Equal(t, 0, BMIGauge(15))
	assert.Equal(t, 50, BMIGauge(25))
	assert.Equal(t, 100, BMIGauge(35))
	assert.Equal(t, 100, BMIGauge(50))
}

func TestBMI_DistanceToHealthyRange(t *testing.T) {
	under, err := BMI(200, 60)
	require.NoError(t, err)
	assert.InDelta(t, 14, under.ToGainKG, 1e-9)
	assert.Zero(t, under.ToLoseKG)

	over, err := BMI(200, 100)
	require.NoError(t, err)
	assert.InDelta(t, 4.4, over.ToLoseKG, 1e-9)
	assert.Zero(t, over.ToGainKG)
}

func TestBMI_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		height float64
		weight float64
		field  string
	}{
		{"zero height", 0, 70, "height_cm"},
		{"negative weight", 170, -3, "weight_kg"},
		{"height over 250", 251, 70, "height_cm"},
		{"weight over 300", 170, 301, "weight_kg"},
		{"height squares to zero", 1e-160, 70, "height_cm"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BMI(tc.height, tc.weight)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

/* ─── Body fat ────────────────────────────────────────────────────────── */

func TestBodyFat_Male(t *testing.T) {
	pct, err := BodyFat(BodyFatInput{Sex: Male, HeightCM: 175, NeckCM: 38, WaistCM: 85})
	require.NoError(t, err)
	assert.InDelta(t, 16.94, pct, 0.01)
}

func TestBodyFat_Female(t *testing.T) {
	pct, err := BodyFat(BodyFatInput{Sex: Female, HeightCM: 165, NeckCM: 34, WaistCM: 80, HipCM: 100})
	require.NoError(t, err)
	assert.InDelta(t, 31.40, pct, 0.01)
}

// TestBodyFat_Rejects covers the guards that must fire before any log10 call.
func TestBodyFat_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		in    BodyFatInput
		field string
	}{
		{"waist below neck", BodyFatInput{Sex: Male, HeightCM: 175, NeckCM: 38, WaistCM: 35}, "waist_cm"},
		{"waist equals neck", BodyFatInput{Sex: Male, HeightCM: 175, NeckCM: 38, WaistCM: 38}, "waist_cm"},
		{"female without hip", BodyFatInput{Sex: Female, HeightCM: 165, NeckCM: 34, WaistCM: 80}, "hip_cm"},
		{"zero neck", BodyFatInput{Sex: Male, HeightCM: 175, WaistCM: 80}, "neck_cm"},
		{"zero height", BodyFatInput{Sex: Male, NeckCM: 38, WaistCM: 80}, "height_cm"},
		{"bad sex", BodyFatInput{Sex: "x", HeightCM: 175, NeckCM: 38, WaistCM: 80}, "sex"},
		{"waist over 300", BodyFatInput{Sex: Male, HeightCM: 175, NeckCM: 38, WaistCM: 301}, "waist_cm"},
		{"non-positive denominator", BodyFatInput{Sex: Male, HeightCM: 1e-10, NeckCM: 1, WaistCM: 100}, "waist_cm"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BodyFat(tc.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestBodyFat_Clamped(t *testing.T) {
	low, err := BodyFat(BodyFatInput{Sex: Male, HeightCM: 175, NeckCM: 38, WaistCM: 39})
	require.NoError(t, err)
	assert.Equal(t, MinBodyFatPct, low)

	high, err := BodyFat(BodyFatInput{Sex: Male, HeightCM: 150, NeckCM: 30, WaistCM: 300})
	require.NoError(t, err)
	assert.Equal(t, MaxBodyFatPct, high)
}

/* ─── Ideal weight ────────────────────────────────────────────────────── */

func TestIdealWeight_AverageIsMean(t *testing.T) {
	for _, sex := range []Sex{Male, Female} {
		for _, h := range []float64{140, 160, 175.5, 199} {
			w, err := IdealWeight(h, sex)
			require.NoError(t, err)
			assert.Equal(t, (w.Devine+w.Robinson+w.Miller+w.Hamwi)/4, w.Average, "%s %v", sex, h)
		}
	}
}

// TestIdealWeight_BelowFiveFeet uses the base coefficients only.
func TestIdealWeight_BelowFiveFeet(t *testing.T) {
	w, err := IdealWeight(140, Male)
	require.NoError(t, err)
	assert.Equal(t, IdealWeights{Devine: 50, Robinson: 52, Miller: 56.2, Hamwi: 48, Average: (50 + 52 + 56.2 + 48) / 4.0}, w)
}

func TestIdealWeight_TenInchesOver(t *testing.T) {
	w, err := IdealWeight(177.8, Female)
	require.NoError(t, err)
	assert.InDelta(t, 68.5, w.Devine, 1e-6)
	assert.InDelta(t, 66.0, w.Robinson, 1e-6)
	assert.InDelta(t, 66.7, w.Miller, 1e-6)
	assert.InDelta(t, 67.5, w.Hamwi, 1e-6)
}

/* ─── WHtR ────────────────────────────────────────────────────────────── */

func TestWaistToHeight_Tiers(t *testing.T) {
	cases := []struct {
		waist float64
		want  RiskTier
	}{
		{49.9, RiskLow},
		{50, RiskModerate},
		{59.9, RiskModerate},
		{60, RiskHigh},
		{90, RiskHigh},
	}
	for _, tc := range cases {
		r, err := WaistToHeight(tc.waist, 100)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.Tier, "waist %v", tc.waist)
		assert.Equal(t, tc.waist/100, r.Ratio)
	}
}

func TestWaistToHeight_Rejects(t *testing.T) {
	_, err := WaistToHeight(0, 170)
	assert.True(t, IsValidation(err))
	_, err = WaistToHeight(80, 0)
	assert.True(t, IsValidation(err))
	_, err = WaistToHeight(301, 170)
	assert.True(t, IsValidation(err))

	// A subnormal height passes the > 0 guard but would divide to +Inf.
	_, err = WaistToHeight(80, 1e-320)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "height_cm", ve.Field)
}
