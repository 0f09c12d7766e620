package tools

import (
	"lg/health-tools-go/internal/calc"
)

/* ─── Shared field definitions ────────────────────────────────────────── */

var sexField = Field{Name: "sex", Label: "Sex", Kind: KindChoice, Default: "male",
	Options: []Option{{"male", "Male"}, {"female", "Female"}}}

func heightField() Field {
	return Field{Name: "height_cm", Label: "Height (cm)", Kind: KindNumber}
}

func weightField() Field {
	return Field{Name: "weight_kg", Label: "Weight (kg)", Kind: KindNumber}
}

var ageField = Field{Name: "age", Label: "Age", Kind: KindInteger}

var activityField = Field{Name: "activity", Label: "Activity factor", Kind: KindNumber, Default: "1.2",
	Hint: "1.1 to 2.5, or a preset name",
	Options: []Option{
		{"1.2", "Sedentary (1.2)"},
		{"1.375", "Light exercise 1-3 days/week (1.375)"},
		{"1.55", "Moderate exercise 3-5 days/week (1.55)"},
		{"1.725", "Hard exercise 6-7 days/week (1.725)"},
		{"1.9", "Very hard exercise or physical job (1.9)"},
	}}

// catalogue is built once and never modified.
var catalogue = []*Tool{
	{
		Slug: "bmi", Title: "BMI calculator", Summary: "BMI with category, gauge, healthy range and advice",
		Fields:  []Field{heightField(), weightField()},
		compute: computeBMI,
	},
	{
		Slug: "bmr", Title: "Basal metabolic rate (BMR)", Summary: "Mifflin-St Jeor estimate of resting energy",
		Fields:  []Field{sexField, ageField, heightField(), weightField()},
		compute: computeBMR,
	},
	{
		Slug: "calorie", Title: "Daily calorie needs (TDEE)", Summary: "BMR scaled by activity level",
		Fields:  []Field{sexField, ageField, heightField(), weightField(), activityField},
		compute: computeTDEE,
	},
	{
		Slug: "bodyfat", Title: "Body fat (US Navy)", Summary: "Body-fat percentage from circumferences",
		Fields: []Field{sexField, heightField(),
			{Name: "neck_cm", Label: "Neck (cm)", Kind: KindNumber},
			{Name: "waist_cm", Label: "Waist (cm)", Kind: KindNumber},
			{Name: "hip_cm", Label: "Hip (cm)", Kind: KindNumber, Optional: true, Hint: "required for women"},
		},
		compute: computeBodyFat,
	},
	{
		Slug: "ideal-weight", Title: "Ideal weight", Summary: "Devine, Robinson, Miller and Hamwi compared",
		Fields:  []Field{sexField, heightField()},
		compute: computeIdealWeight,
	},
	{
		Slug: "waist", Title: "Waist-to-height ratio", Summary: "WHtR risk tier",
		Fields:  []Field{{Name: "waist_cm", Label: "Waist (cm)", Kind: KindNumber}, heightField()},
		compute: computeWaist,
	},
	{
		Slug: "protein", Title: "Protein needs", Summary: "Daily protein by goal",
		Fields: []Field{weightField(),
			{Name: "goal", Label: "Goal", Kind: KindChoice, Default: string(calc.GoalMaintain), Options: []Option{
				{string(calc.GoalMaintain), proteinLabels[calc.GoalMaintain]},
				{string(calc.GoalFatLoss), proteinLabels[calc.GoalFatLoss]},
				{string(calc.GoalMuscleGain), proteinLabels[calc.GoalMuscleGain]},
			}},
		},
		compute: computeProtein,
	},
	{
		Slug: "steps", Title: "Steps to calories", Summary: "Rough walking energy estimate",
		Fields:  []Field{{Name: "steps", Label: "Steps", Kind: KindInteger}, weightField()},
		compute: computeSteps,
	},
	{
		Slug: "deficit", Title: "Calorie target", Summary: "Daily intake for fat loss, maintenance or gain",
		Fields: []Field{
			{Name: "tdee", Label: "TDEE (kcal/day)", Kind: KindNumber},
			{Name: "mode", Label: "Plan", Kind: KindChoice, Default: string(calc.LossEasy), Options: []Option{
				{string(calc.LossEasy), deficitLabels[calc.LossEasy]},
				{string(calc.LossFast), deficitLabels[calc.LossFast]},
				{string(calc.Maintain), deficitLabels[calc.Maintain]},
				{string(calc.Gain), deficitLabels[calc.Gain]},
			}},
		},
		compute: computeDeficit,
	},
	{
		Slug: "goal-time", Title: "Time to goal weight", Summary: "Weeks needed at a steady weekly rate",
		Fields: []Field{
			{Name: "current_kg", Label: "Current weight (kg)", Kind: KindNumber},
			{Name: "target_kg", Label: "Target weight (kg)", Kind: KindNumber},
			{Name: "rate", Label: "Weekly change (kg/week)", Kind: KindNumber, Default: "0.5", Hint: "0.25 to 1.0 is typical"},
		},
		compute: computeGoalTime,
	},
	{
		Slug: "water", Title: "Daily water intake", Summary: "Water suggestion from body weight",
		Fields:  []Field{weightField()},
		compute: computeWater,
	},
	{
		Slug: "sleep", Title: "Sleep cycles", Summary: "Bed and wake times on 90-minute cycles",
		Fields: []Field{
			{Name: "mode", Label: "Mode", Kind: KindChoice, Default: string(calc.SleepNow), Options: []Option{
				{string(calc.SleepNow), "I am going to bed at"},
				{string(calc.WakeAt), "I want to wake up at"},
			}},
			{Name: "time_hm", Label: "Time (HH:MM)", Kind: KindTime},
		},
		compute: computeSleep,
	},
}

// Catalogue returns every tool in display order.
func Catalogue() []*Tool {
	out := make([]*Tool, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a tool by slug.
func Lookup(slug string) (*Tool, bool) {
	for _, t := range catalogue {
		if t.Slug == slug {
			return t, true
		}
	}
	return nil, false
}

/* ─── Compute functions ───────────────────────────────────────────────── */

func computeBMI(f *form) (Result, error) {
	h, w := f.number("height_cm"), f.number("weight_kg")
	if err := f.done(); err != nil {
		return nil, err
	}
	r, err := calc.BMI(h, w)
	if err != nil {
		return nil, err
	}
	return BMIReport{BMIResult: r, Label: bmiLabels[r.Category], Advice: bmiAdvice[r.Category]}, nil
}

// profile reads the fields shared by BMR and TDEE.
func profile(f *form) (calc.Sex, int, float64, float64) {
	sex := calc.Sex(f.choice("sex"))
	age := f.integer("age")
	return sex, age, f.number("height_cm"), f.number("weight_kg")
}

func computeBMR(f *form) (Result, error) {
	sex, age, h, w := profile(f)
	if err := f.done(); err != nil {
		return nil, err
	}
	bmr, err := calc.BMR(sex, age, h, w)
	if err != nil {
		return nil, err
	}
	return BMRReport{BMR: bmr, Kcal: calc.RoundHalfUp(bmr)}, nil
}

func computeTDEE(f *form) (Result, error) {
	sex, age, h, w := profile(f)
	activity := f.text("activity")
	if err := f.done(); err != nil {
		return nil, err
	}
	bmr, err := calc.BMR(sex, age, h, w)
	if err != nil {
		return nil, err
	}
	factor, err := calc.ActivityFactor(activity)
	if err != nil {
		return nil, err
	}
	tdee, err := calc.TDEE(bmr, factor)
	if err != nil {
		return nil, err
	}
	return TDEEReport{BMRKcal: calc.RoundHalfUp(bmr), Factor: factor, TDEE: tdee}, nil
}

func computeBodyFat(f *form) (Result, error) {
	in := calc.BodyFatInput{Sex: calc.Sex(f.choice("sex"))}
	in.HeightCM = f.number("height_cm")
	in.NeckCM = f.number("neck_cm")
	in.WaistCM = f.number("waist_cm")
	in.HipCM, _ = f.optionalNumber("hip_cm")
	if err := f.done(); err != nil {
		return nil, err
	}
	pct, err := calc.BodyFat(in)
	if err != nil {
		return nil, err
	}
	return BodyFatReport{Sex: in.Sex, Percent: calc.Round1(pct)}, nil
}

func computeIdealWeight(f *form) (Result, error) {
	sex := calc.Sex(f.choice("sex"))
	h := f.number("height_cm")
	if err := f.done(); err != nil {
		return nil, err
	}
	w, err := calc.IdealWeight(h, sex)
	if err != nil {
		return nil, err
	}
	return IdealWeightReport{w}, nil
}

func computeWaist(f *form) (Result, error) {
	waist, h := f.number("waist_cm"), f.number("height_cm")
	if err := f.done(); err != nil {
		return nil, err
	}
	r, err := calc.WaistToHeight(waist, h)
	if err != nil {
		return nil, err
	}
	return WaistReport{WHtR: r, Label: tierLabels[r.Tier]}, nil
}

func computeProtein(f *form) (Result, error) {
	w := f.number("weight_kg")
	goal := calc.ProteinGoal(f.choice("goal"))
	if err := f.done(); err != nil {
		return nil, err
	}
	p, err := calc.Protein(w, goal)
	if err != nil {
		return nil, err
	}
	return ProteinReport{ProteinTarget: p, GramsRounded: calc.RoundHalfUp(p.Grams), Label: proteinLabels[goal]}, nil
}

func computeSteps(f *form) (Result, error) {
	steps, w := f.integer("steps"), f.number("weight_kg")
	if err := f.done(); err != nil {
		return nil, err
	}
	k, err := calc.StepsToKcal(steps, w)
	if err != nil {
		return nil, err
	}
	return StepsReport{Steps: steps, Kcal: calc.RoundHalfUp(k)}, nil
}

func computeDeficit(f *form) (Result, error) {
	tdee := f.number("tdee")
	mode := calc.DeficitMode(f.choice("mode"))
	if err := f.done(); err != nil {
		return nil, err
	}
	plan, err := calc.Deficit(tdee, mode)
	if err != nil {
		return nil, err
	}
	return DeficitReport{DeficitPlan: plan, Label: deficitLabels[mode]}, nil
}

func computeGoalTime(f *form) (Result, error) {
	current, target, rate := f.number("current_kg"), f.number("target_kg"), f.number("rate")
	if err := f.done(); err != nil {
		return nil, err
	}
	weeks, err := calc.WeeksToGoal(current, target, rate)
	if err != nil {
		return nil, err
	}
	dir := "lose"
	switch {
	case target > current:
		dir = "gain"
	case target == current:
		dir = "none"
	}
	return GoalReport{Weeks: calc.Round1(weeks), Direction: dir}, nil
}

func computeWater(f *form) (Result, error) {
	w := f.number("weight_kg")
	if err := f.done(); err != nil {
		return nil, err
	}
	water, err := calc.WaterIntake(w)
	if err != nil {
		return nil, err
	}
	return WaterReport{water}, nil
}

func computeSleep(f *form) (Result, error) {
	mode := calc.SleepMode(f.choice("mode"))
	hm := f.text("time_hm")
	if err := f.done(); err != nil {
		return nil, err
	}
	anchor, err := calc.ParseClock(hm)
	if err != nil {
		return nil, err
	}
	opts, err := calc.SleepTimes(anchor, mode)
	if err != nil {
		return nil, err
	}
	return SleepReport{Mode: mode, Anchor: anchor, Options: opts}, nil
}
