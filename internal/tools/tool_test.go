package tools

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/health-tools-go/internal/calc"
)

// run looks up a tool and runs it with the given key/value pairs.
func run(t *testing.T, slug string, kv ...string) Outcome {
	t.Helper()
	tool, ok := Lookup(slug)
	require.True(t, ok, "tool %q not found", slug)
	in := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		in.Set(kv[i], kv[i+1])
	}
	return tool.Run(in)
}

func TestCatalogue_Paths(t *testing.T) {
	want := []string{"/bmi", "/bmr", "/calorie", "/bodyfat", "/ideal-weight", "/waist",
		"/protein", "/steps", "/deficit", "/goal-time", "/water", "/sleep"}
	var got []string
	for _, tool := range Catalogue() {
		got = append(got, tool.Path())
	}
	assert.Equal(t, want, got)
}

// TestCatalogue_ChoiceDefaultsAreOptions guards against a default that the
// choice validator would then reject.
func TestCatalogue_ChoiceDefaultsAreOptions(t *testing.T) {
	for _, tool := range Catalogue() {
		for _, fd := range tool.Fields {
			if fd.Kind != KindChoice {
				continue
			}
			assert.Contains(t, optionValues(fd.Options), fd.Default, "%s.%s", tool.Slug, fd.Name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("horoscope")
	assert.False(t, ok)
}

/* ─── Parsing failures ────────────────────────────────────────────────── */

func TestRun_ParsingFailures(t *testing.T) {
	cases := []struct {
		name  string
		slug  string
		kv    []string
		field string
		msg   string
	}{
		{"missing", "bmi", []string{"weight_kg", "70"}, "height_cm", "Height (cm) is required"},
		{"not a number", "bmi", []string{"height_cm", "tall", "weight_kg", "70"}, "height_cm", "Height (cm) must be a number"},
		{"NaN spelled out", "water", []string{"weight_kg", "NaN"}, "weight_kg", "Weight (kg) must be a number"},
		{"decimal age", "bmr", []string{"age", "30.5", "height_cm", "170", "weight_kg", "60"}, "age", "Age must be a whole number"},
		{"bad choice", "protein", []string{"weight_kg", "70", "goal", "bulk"}, "goal", "Goal must be one of maintain, fat_loss, muscle_gain"},
		{"first error wins", "waist", []string{"waist_cm", "", "height_cm", "x"}, "waist_cm", "Waist (cm) is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, tc.slug, tc.kv...)
			assert.False(t, out.OK())
			assert.Nil(t, out.Result)
			assert.Equal(t, tc.field, out.Field)
			assert.Equal(t, tc.msg, out.Err)
		})
	}
}

// TestRun_DomainFailure surfaces calc errors exactly like parsing errors.
func TestRun_DomainFailure(t *testing.T) {
	out := run(t, "bodyfat", "sex", "male", "height_cm", "175", "neck_cm", "38", "waist_cm", "35")
	assert.False(t, out.OK())
	assert.Equal(t, "waist_cm", out.Field)
	assert.Equal(t, "Waist (cm) must be larger than neck (cm)", out.Err)

	out = run(t, "goal-time", "current_kg", "80", "target_kg", "70", "rate", "0")
	assert.False(t, out.OK())
	assert.Equal(t, "rate", out.Field)
}

// TestRun_BlankFieldsWithDefaults rejects a blank value even when the field
// has a form default: the default only pre-fills the page.
func TestRun_BlankFieldsWithDefaults(t *testing.T) {
	cases := []struct {
		name  string
		slug  string
		kv    []string
		field string
		msg   string
	}{
		{"blank rate", "goal-time", []string{"current_kg", "80", "target_kg", "70", "rate", ""}, "rate", "Weekly change (kg/week) is required"},
		{"missing rate", "goal-time", []string{"current_kg", "80", "target_kg", "70"}, "rate", "Weekly change (kg/week) is required"},
		{"blank activity", "calorie", []string{"sex", "male", "age", "30", "height_cm", "170", "weight_kg", "60", "activity", " "}, "activity", "Activity factor is required"},
		{"missing activity", "calorie", []string{"sex", "male", "age", "30", "height_cm", "170", "weight_kg", "60"}, "activity", "Activity factor is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, tc.slug, tc.kv...)
			assert.False(t, out.OK())
			assert.Nil(t, out.Result)
			assert.Equal(t, tc.field, out.Field)
			assert.Equal(t, tc.msg, out.Err)
		})
	}
}

// TestRun_MessagesUseFieldLabels keeps parser and formula messages in one voice.
func TestRun_MessagesUseFieldLabels(t *testing.T) {
	out := run(t, "bmi", "height_cm", "0", "weight_kg", "70")
	assert.Equal(t, "Height (cm) must be greater than 0 and at most 250", out.Err)

	out = run(t, "goal-time", "current_kg", "80", "target_kg", "70", "rate", "3")
	assert.Equal(t, "Weekly change (kg/week) must be greater than 0 and at most 2", out.Err)

	out = run(t, "sleep", "mode", "sleep_now", "time_hm", "25:00")
	assert.Equal(t, "Time (HH:MM) must look like 23:30", out.Err)
}

// TestRun_BMRAndCalorieAgree rejects a profile whose BMR is not positive the
// same way in both tools.
func TestRun_BMRAndCalorieAgree(t *testing.T) {
	profile := []string{"sex", "female", "age", "120", "height_cm", "50", "weight_kg", "10"}

	bmr := run(t, "bmr", profile...)
	calorie := run(t, "calorie", append(profile, "activity", "1.2")...)
	for _, out := range []Outcome{bmr, calorie} {
		assert.False(t, out.OK())
		assert.Equal(t, "weight_kg", out.Field)
	}
	assert.Equal(t, bmr.Err, calorie.Err)
}

// TestRun_ExtremeInputStaysFinite covers inputs that pass the > 0 guards but
// would overflow the formulas.
func TestRun_ExtremeInputStaysFinite(t *testing.T) {
	out := run(t, "bmi", "height_cm", "1e-160", "weight_kg", "70")
	assert.False(t, out.OK())
	assert.Equal(t, "height_cm", out.Field)

	out = run(t, "waist", "waist_cm", "80", "height_cm", "1e-320")
	assert.False(t, out.OK())
	assert.Equal(t, "height_cm", out.Field)
}

/* ─── Successful runs ─────────────────────────────────────────────────── */

func TestRun_BMI(t *testing.T) {
	out := run(t, "bmi", "height_cm", "170", "weight_kg", "65")
	require.True(t, out.OK(), out.Err)
	r := out.Result.(BMIReport)
	assert.Equal(t, calc.Normal, r.Category)
	assert.Equal(t, "Normal", r.Label)
	assert.Len(t, r.AdviceLines(), 3)
	assert.Equal(t, Stat{"BMI", "22.5"}, r.Stats()[0])
	assert.Equal(t, Stat{"Healthy weight range", "53.5 - 69.1 kg"}, r.Stats()[2])
	assert.Equal(t, "170", out.Values["height_cm"])
}

func TestRun_BMR_RoundsHalfUp(t *testing.T) {
	out := run(t, "bmr", "sex", "male", "age", "30", "height_cm", "170", "weight_kg", "60")
	require.True(t, out.OK(), out.Err)
	assert.Equal(t, BMRReport{BMR: 1517.5, Kcal: 1518}, out.Result)
}

func TestRun_TDEE(t *testing.T) {
	out := run(t, "calorie", "sex", "male", "age", "30", "height_cm", "170", "weight_kg", "60", "activity", "1.2")
	require.True(t, out.OK(), out.Err)
	assert.Equal(t, TDEEReport{BMRKcal: 1518, Factor: 1.2, TDEE: 1821}, out.Result)

	// Presets resolve to their multiplier.
	out = run(t, "calorie", "sex", "male", "age", "30", "height_cm", "170", "weight_kg", "60", "activity", "sedentary")
	require.True(t, out.OK(), out.Err)
	assert.Equal(t, 1821, out.Result.(TDEEReport).TDEE)

	out = run(t, "calorie", "sex", "male", "age", "30", "height_cm", "170", "weight_kg", "60", "activity", "3")
	assert.Equal(t, "activity", out.Field)
}

func TestRun_BodyFatFemaleNeedsHip(t *testing.T) {
	out := run(t, "bodyfat", "sex", "female", "height_cm", "165", "neck_cm", "34", "waist_cm", "80")
	assert.Equal(t, "hip_cm", out.Field)

	out = run(t, "bodyfat", "sex", "female", "height_cm", "165", "neck_cm", "34", "waist_cm", "80", "hip_cm", "100")
	require.True(t, out.OK(), out.Err)
	assert.Equal(t, BodyFatReport{Sex: calc.Female, Percent: 31.4}, out.Result)
}

func TestRun_SexDefaultsToMale(t *testing.T) {
	out := run(t, "ideal-weight", "height_cm", "140")
	require.True(t, out.OK(), out.Err)
	assert.Equal(t, "male", out.Values["sex"])
	assert.InDelta(t, 50.0, out.Result.(IdealWeightReport).Devine, 1e-9)
}

func TestRun_Others(t *testing.T) {
	cases := []struct {
		slug  string
		kv    []string
		stats []Stat
	}{
		{"waist", []string{"waist_cm", "85", "height_cm", "170"},
			[]Stat{{"Waist-to-height ratio", "0.50"}, {"Risk", "Needs attention"}}},
		{"protein", []string{"weight_kg", "70", "goal", "fat_loss"},
			[]Stat{{"Goal", "Fat loss"}, {"Protein", "112 g/day (1.6 g/kg)"}}},
		{"steps", []string{"steps", "10000", "weight_kg", "60"},
			[]Stat{{"Energy burned", "about 500 kcal for 10000 steps"}}},
		{"deficit", []string{"tdee", "1500", "mode", "loss_fast"},
			[]Stat{{"Plan", "Fat loss (faster)"}, {"Daily target", "1200 kcal/day"}, {"Note", "raised to the 1200 kcal minimum"}}},
		{"goal-time", []string{"current_kg", "80", "target_kg", "70", "rate", "0.5"},
			[]Stat{{"Weeks to lose", "20.0"}}},
		{"goal-time", []string{"current_kg", "70", "target_kg", "70", "rate", "1"},
			[]Stat{{"Weeks", "0.0 (already at target)"}}},
		{"water", []string{"weight_kg", "70"},
			[]Stat{{"Daily water", "2310 ml (2.3 L)"}}},
		{"sleep", []string{"mode", "sleep_now", "time_hm", "23:00"},
			[]Stat{{"Wake up at", "03:45 (3 cycles), 05:15 (4 cycles), 06:45 (5 cycles), 08:15 (6 cycles)"}}},
		{"sleep", []string{"mode", "wake_at", "time_hm", "7:00"},
			[]Stat{{"Go to bed at", "02:15 (3 cycles), 00:45 (4 cycles), 23:15 (5 cycles), 21:45 (6 cycles)"}}},
	}
	for _, tc := range cases {
		t.Run(tc.slug, func(t *testing.T) {
			out := run(t, tc.slug, tc.kv...)
			require.True(t, out.OK(), out.Err)
			assert.Equal(t, tc.stats, out.Result.Stats())
		})
	}
}

func TestOutcome_JSON(t *testing.T) {
	out := run(t, "water", "weight_kg", "70")
	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inputs":{"weight_kg":"70"},"result":{"ml":2310,"liters":2.3}}`, string(b))

	out = run(t, "water", "weight_kg", "-1")
	b, err = json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inputs":{"weight_kg":"-1"},"error":"Weight (kg) must be greater than 0 and at most 300","field":"weight_kg"}`, string(b))
}
