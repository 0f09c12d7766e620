package calc

import "math"

/* ─── Protein ─────────────────────────────────────────────────────────── */

// ProteinGoal selects grams of protein per kg of body weight.
type ProteinGoal string

const (
	GoalMaintain   ProteinGoal = "maintain"
	GoalFatLoss    ProteinGoal = "fat_loss"
	GoalMuscleGain ProteinGoal = "muscle_gain"
)

var proteinPerKG = map[ProteinGoal]float64{
	GoalMaintain:   1.2,
	GoalFatLoss:    1.6,
	GoalMuscleGain: 1.8,
}

// ProteinTarget is a daily protein suggestion.
type ProteinTarget struct {
	Goal  ProteinGoal `json:"goal"`
	PerKG float64     `json:"g_per_kg"`
	Grams float64     `json:"grams"`
}

// Protein returns weight × {1.2, 1.6, 1.8} g for maintain, fat_loss and
// muscle_gain respectively.
func Protein(weightKG float64, goal ProteinGoal) (ProteinTarget, error) {
	if err := checkRange("weight_kg", "Weight (kg)", weightKG, maxWeightKG); err != nil {
		return ProteinTarget{}, err
	}
	perKG, ok := proteinPerKG[goal]
	if !ok {
		return ProteinTarget{}, invalid("goal", "Goal must be one of maintain, fat_loss, muscle_gain")
	}
	return ProteinTarget{Goal: goal, PerKG: perKG, Grams: weightKG * perKG}, nil
}

/* ─── Steps ───────────────────────────────────────────────────────────── */

// MaxSteps bounds the step counter input.
const MaxSteps = 200000

// kcalPerStepAt60KG is the per-step burn for a 60 kg adult; it scales
// linearly with body weight.
const kcalPerStepAt60KG = 0.05

// StepsToKcal estimates walking energy as steps × 0.05 × weight/60.
func StepsToKcal(steps int, weightKG float64) (float64, error) {
	if steps <= 0 || steps > MaxSteps {
		return 0, invalid("steps", "Steps must be between 1 and %d", MaxSteps)
	}
	if err := checkRange("weight_kg", "Weight (kg)", weightKG, maxWeightKG); err != nil {
		return 0, err
	}
	return float64(steps) * kcalPerStepAt60KG * (weightKG / 60), nil
}

/* ─── Goal time ───────────────────────────────────────────────────────── */

// MaxRateKGPerWeek is the fastest weekly change the goal planner accepts.
const MaxRateKGPerWeek = 2.0

// WeeksToGoal is |target - current| / rate. A non-positive rate is rejected
// here rather than producing an infinite duration.
func WeeksToGoal(currentKG, targetKG, rateKGPerWeek float64) (float64, error) {
	if err := checkRange("current_kg", "Current weight (kg)", currentKG, maxWeightKG); err != nil {
		return 0, err
	}
	if err := checkRange("target_kg", "Target weight (kg)", targetKG, maxWeightKG); err != nil {
		return 0, err
	}
	if err := checkRange("rate", "Weekly change (kg/week)", rateKGPerWeek, MaxRateKGPerWeek); err != nil {
		return 0, err
	}
	return math.Abs(targetKG-currentKG) / rateKGPerWeek, nil
}

/* ─── Water ───────────────────────────────────────────────────────────── */

// WaterMLPerKG is the midpoint of the common 30-35 ml/kg guideline.
const WaterMLPerKG = 33.0

// Water is a daily water intake suggestion.
type Water struct {
	ML     int     `json:"ml"`
	Liters float64 `json:"liters"`
}

// WaterIntake returns weight × 33 ml, with the litre figure taken from the
// rounded millilitres.
func WaterIntake(weightKG float64) (Water, error) {
	if err := checkRange("weight_kg", "Weight (kg)", weightKG, maxWeightKG); err != nil {
		return Water{}, err
	}
	ml := RoundHalfUp(weightKG * WaterMLPerKG)
	return Water{ML: ml, Liters: Round1(float64(ml) / 1000)}, nil
}
