package calc

import (
	"math"
	"strconv"
	"strings"
)

// Upper bounds shared by the body-profile inputs.
const (
	maxAgeYears = 120
	maxHeightCM = 250
	maxWeightKG = 300

	maxCircumferenceCM = 300
)

// activityMultipliers maps named activity levels to their TDEE multiplier.
// ActivityFactor also accepts a raw multiplier, so these are presets only.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Accepted activity factor range for TDEE.
const (
	MinActivityFactor = 1.1
	MaxActivityFactor = 2.5
)

// ActivityLevels returns the preset names in increasing order of activity.
func ActivityLevels() []string {
	return []string{"sedentary", "light", "moderate", "active", "very_active"}
}

// ActivityFactor resolves a named level or a numeric multiplier string.
func ActivityFactor(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if f, ok := activityMultipliers[s]; ok {
		return f, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < MinActivityFactor || f > MaxActivityFactor {
		return 0, invalid("activity", "Activity factor must be between %g and %g", MinActivityFactor, MaxActivityFactor)
	}
	return f, nil
}

// BMR estimates basal metabolic rate (kcal/day) with Mifflin-St Jeor:
// 10w + 6.25h - 5a, then +5 for men and -161 for women. The value is returned
// unrounded; display code rounds with RoundHalfUp. A profile that comes out at
// or below zero is rejected against weight_kg.
func BMR(sex Sex, age int, heightCM, weightKG float64) (float64, error) {
	if _, err := ParseSex(string(sex)); err != nil {
		return 0, err
	}
	if age <= 0 || age > maxAgeYears {
		return 0, invalid("age", "Age must be between 1 and %d", maxAgeYears)
	}
	if err := checkRange("height_cm", "Height (cm)", heightCM, maxHeightCM); err != nil {
		return 0, err
	}
	if err := checkRange("weight_kg", "Weight (kg)", weightKG, maxWeightKG); err != nil {
		return 0, err
	}

	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == Male {
		bmr += 5
	} else {
		bmr -= 161
	}
	if bmr <= 0 {
		return 0, invalid("weight_kg", "Weight (kg) is too low for this age and height to give a positive BMR")
	}
	return bmr, nil
}

// TDEE multiplies a BMR by an activity factor and rounds half up.
func TDEE(bmr, factor float64) (int, error) {
	if math.IsNaN(bmr) || bmr <= 0 {
		return 0, invalid("bmr", "BMR must be greater than 0")
	}
	if math.IsNaN(factor) || factor < MinActivityFactor || factor > MaxActivityFactor {
		return 0, invalid("activity", "Activity factor must be between %g and %g", MinActivityFactor, MaxActivityFactor)
	}
	return RoundHalfUp(bmr * factor), nil
}

/* ─── Deficit plan ────────────────────────────────────────────────────── */

// DeficitMode names a calorie target strategy relative to TDEE.
type DeficitMode string

const (
	LossFast DeficitMode = "loss_fast"
	LossEasy DeficitMode = "loss_easy"
	Maintain DeficitMode = "maintain"
	Gain     DeficitMode = "gain"
)

// deficitDeltas is the kcal/day adjustment applied to TDEE for each mode.
var deficitDeltas = map[DeficitMode]int{
	LossFast: -500,
	LossEasy: -300,
	Maintain: 0,
	Gain:     250,
}

// MinDailyKcal is the floor for any suggested daily intake.
const MinDailyKcal = 1200

const maxTDEE = 10000

// DeficitPlan is a suggested daily intake for a mode.
type DeficitPlan struct {
	Mode       DeficitMode `json:"mode"`
	Delta      int         `json:"delta_kcal"`
	TargetKcal int         `json:"target_kcal"`
	Floored    bool        `json:"floored"`
}

// Deficit computes max(1200, round(tdee + delta)) for the given mode.
func Deficit(tdee float64, mode DeficitMode) (DeficitPlan, error) {
	if err := checkRange("tdee", "TDEE (kcal/day)", tdee, maxTDEE); err != nil {
		return DeficitPlan{}, err
	}
	delta, ok := deficitDeltas[mode]
	if !ok {
		return DeficitPlan{}, invalid("mode", "Plan must be one of loss_easy, loss_fast, maintain, gain")
	}
	target := RoundHalfUp(tdee + float64(delta))
	plan := DeficitPlan{Mode: mode, Delta: delta, TargetKcal: target}
	if target < MinDailyKcal {
		plan.TargetKcal = MinDailyKcal
		plan.Floored = true
	}
	return plan, nil
}
