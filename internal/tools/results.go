package tools

import (
	"fmt"
	"strconv"
	"strings"

	"lg/health-tools-go/internal/calc"
)

func one(x float64) string {
	return strconv.FormatFloat(calc.Round1(x), 'f', 1, 64)
}

func kcal(n int) string {
	return strconv.Itoa(n) + " kcal/day"
}

/* ─── Labels ──────────────────────────────────────────────────────────── */

var bmiLabels = map[calc.BMICategory]string{
	calc.Underweight: "Underweight",
	calc.Normal:      "Normal",
	calc.Overweight:  "Overweight",
	calc.Obese:       "Obese",
}

var bmiAdvice = map[calc.BMICategory][]string{
	calc.Underweight: {
		"Keep to three regular meals with enough protein.",
		"Add two or three strength sessions a week to build muscle and stamina.",
		"Look after sleep quality and stress, and avoid long runs of late nights.",
	},
	calc.Normal: {
		"Hold the current trend and keep an eye on waist and body fat.",
		"About 150 minutes of moderate exercise a week is easy to keep up long term.",
		"Favour high-fibre food, enough protein and a steady routine.",
	},
	calc.Overweight: {
		"Work out your TDEE first, then try a daily deficit of about 300 to 500 kcal.",
		"Walk more and add strength training to protect metabolism and muscle.",
		"Track the trend for 2 to 4 weeks before adjusting; single days swing.",
	},
	calc.Obese: {
		"Start with a mild deficit and regular exercise you can sustain.",
		"Read BMI together with waist, body fat and check-up results.",
		"With a chronic condition or discomfort, get personalised advice from a professional first.",
	},
}

var tierLabels = map[calc.RiskTier]string{
	calc.RiskLow:      "Good",
	calc.RiskModerate: "Needs attention",
	calc.RiskHigh:     "Elevated risk",
}

var proteinLabels = map[calc.ProteinGoal]string{
	calc.GoalMaintain:   "Everyday maintenance",
	calc.GoalFatLoss:    "Fat loss",
	calc.GoalMuscleGain: "Muscle gain",
}

var deficitLabels = map[calc.DeficitMode]string{
	calc.LossFast: "Fat loss (faster)",
	calc.LossEasy: "Fat loss (gentle)",
	calc.Maintain: "Maintain weight",
	calc.Gain:     "Gain weight / muscle (gentle)",
}

/* ─── Result records ──────────────────────────────────────────────────── */

// BMIReport is the BMI tool result.
type BMIReport struct {
	calc.BMIResult
	Label  string   `json:"label"`
	Advice []string `json:"advice"`
}

func (r BMIReport) Stats() []Stat {
	stats := []Stat{
		{"BMI", one(r.BMI)},
		{"Category", r.Label},
		{"Healthy weight range", one(r.HealthyMinKG) + " - " + one(r.HealthyMaxKG) + " kg"},
	}
	switch {
	case r.ToGainKG > 0:
		stats = append(stats, Stat{"To reach the range", "gain " + one(r.ToGainKG) + " kg"})
	case r.ToLoseKG > 0:
		stats = append(stats, Stat{"To reach the range", "lose " + one(r.ToLoseKG) + " kg"})
	}
	return stats
}

func (r BMIReport) GaugePercent() int     { return r.Gauge }
func (r BMIReport) AdviceLines() []string { return r.Advice }

// BMRReport is the BMR tool result.
type BMRReport struct {
	BMR  float64 `json:"bmr"`
	Kcal int     `json:"kcal"`
}

func (r BMRReport) Stats() []Stat {
	return []Stat{{"BMR (Mifflin-St Jeor)", kcal(r.Kcal)}}
}

// TDEEReport is the daily calorie needs result.
type TDEEReport struct {
	BMRKcal int     `json:"bmr_kcal"`
	Factor  float64 `json:"activity_factor"`
	TDEE    int     `json:"tdee"`
}

func (r TDEEReport) Stats() []Stat {
	return []Stat{
		{"BMR", kcal(r.BMRKcal)},
		{"Activity factor", strconv.FormatFloat(r.Factor, 'f', -1, 64)},
		{"TDEE", kcal(r.TDEE)},
	}
}

// BodyFatReport is the US Navy body-fat result.
type BodyFatReport struct {
	Sex     calc.Sex `json:"sex"`
	Percent float64  `json:"percent"`
}

func (r BodyFatReport) Stats() []Stat {
	return []Stat{{"Body fat", one(r.Percent) + "%"}}
}

// IdealWeightReport lists each reference formula and their mean.
type IdealWeightReport struct {
	calc.IdealWeights
}

func (r IdealWeightReport) Stats() []Stat {
	return []Stat{
		{"Devine", one(r.Devine) + " kg"},
		{"Robinson", one(r.Robinson) + " kg"},
		{"Miller", one(r.Miller) + " kg"},
		{"Hamwi", one(r.Hamwi) + " kg"},
		{"Average", one(r.Average) + " kg"},
	}
}

// WaistReport is the waist-to-height result.
type WaistReport struct {
	calc.WHtR
	Label string `json:"label"`
}

func (r WaistReport) Stats() []Stat {
	return []Stat{
		{"Waist-to-height ratio", strconv.FormatFloat(r.Ratio, 'f', 2, 64)},
		{"Risk", r.Label},
	}
}

// ProteinReport is the daily protein suggestion.
type ProteinReport struct {
	calc.ProteinTarget
	GramsRounded int    `json:"grams_rounded"`
	Label        string `json:"label"`
}

func (r ProteinReport) Stats() []Stat {
	return []Stat{
		{"Goal", r.Label},
		{"Protein", fmt.Sprintf("%d g/day (%g g/kg)", r.GramsRounded, r.PerKG)},
	}
}

// StepsReport is the walking energy estimate.
type StepsReport struct {
	Steps int `json:"steps"`
	Kcal  int `json:"kcal"`
}

func (r StepsReport) Stats() []Stat {
	return []Stat{{"Energy burned", fmt.Sprintf("about %d kcal for %d steps", r.Kcal, r.Steps)}}
}

// DeficitReport is the calorie target result.
type DeficitReport struct {
	calc.DeficitPlan
	Label string `json:"label"`
}

func (r DeficitReport) Stats() []Stat {
	stats := []Stat{
		{"Plan", r.Label},
		{"Daily target", kcal(r.TargetKcal)},
	}
	if r.Floored {
		stats = append(stats, Stat{"Note", fmt.Sprintf("raised to the %d kcal minimum", calc.MinDailyKcal)})
	}
	return stats
}

// GoalReport is the time-to-goal estimate.
type GoalReport struct {
	Weeks     float64 `json:"weeks"`
	Direction string  `json:"direction"`
}

func (r GoalReport) Stats() []Stat {
	if r.Direction == "none" {
		return []Stat{{"Weeks", "0.0 (already at target)"}}
	}
	return []Stat{{"Weeks to " + r.Direction, one(r.Weeks)}}
}

// WaterReport is the daily water suggestion.
type WaterReport struct {
	calc.Water
}

func (r WaterReport) Stats() []Stat {
	return []Stat{{"Daily water", fmt.Sprintf("%d ml (%s L)", r.ML, one(r.Liters))}}
}

// SleepReport lists the suggested times for the chosen mode.
type SleepReport struct {
	Mode    calc.SleepMode     `json:"mode"`
	Anchor  calc.ClockTime     `json:"anchor"`
	Options []calc.SleepOption `json:"options"`
}

func (r SleepReport) Stats() []Stat {
	label := "Wake up at"
	if r.Mode == calc.WakeAt {
		label = "Go to bed at"
	}
	parts := make([]string, len(r.Options))
	for i, o := range r.Options {
		parts[i] = fmt.Sprintf("%s (%d cycles)", o.Time, o.Cycles)
	}
	return []Stat{{label, strings.Join(parts, ", ")}}
}
