package calc

import "math"

/* ─── BMI ─────────────────────────────────────────────────────────────── */

// BMICategory is an adult BMI band using the {18.5, 24, 28} cut-offs.
type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

// Healthy BMI band used for the suggested weight range.
const (
	HealthyBMIMin = 18.5
	HealthyBMIMax = 23.9
)

// ClassifyBMI maps a BMI to its band. Bands are closed-open: 18.5 is normal,
// 24.0 is overweight and 28.0 is obese.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 24.0:
		return Normal
	case bmi < 28.0:
		return Overweight
	default:
		return Obese
	}
}

// BMIGauge maps a BMI in [15, 35] onto a 0-100 gauge position.
func BMIGauge(bmi float64) int {
	p := (bmi - 15.0) / (35.0 - 15.0) * 100.0
	return RoundHalfUp(clamp(p, 0, 100))
}

// BMIResult is the full BMI evaluation. ToGainKG and ToLoseKG are zero unless
// the BMI falls below or above the healthy band.
type BMIResult struct {
	BMI          float64     `json:"bmi"`
	Category     BMICategory `json:"category"`
	Gauge        int         `json:"gauge"`
	HealthyMinKG float64     `json:"healthy_min_kg"`
	HealthyMaxKG float64     `json:"healthy_max_kg"`
	ToGainKG     float64     `json:"to_gain_kg,omitempty"`
	ToLoseKG     float64     `json:"to_lose_kg,omitempty"`
}

// BMI computes weight / (height in metres)^2 and everything derived from it.
func BMI(heightCM, weightKG float64) (BMIResult, error) {
	if err := checkRange("height_cm", "Height (cm)", heightCM, maxHeightCM); err != nil {
		return BMIResult{}, err
	}
	if err := checkRange("weight_kg", "Weight (kg)", weightKG, maxWeightKG); err != nil {
		return BMIResult{}, err
	}

	m := heightCM / 100
	bmi := weightKG / (m * m)
	if err := checkFinite("height_cm", "Height (cm) is too small to compute a BMI", bmi); err != nil {
		return BMIResult{}, err
	}
	r := BMIResult{
		BMI:          bmi,
		Category:     ClassifyBMI(bmi),
		Gauge:        BMIGauge(bmi),
		HealthyMinKG: HealthyBMIMin * m * m,
		HealthyMaxKG: HealthyBMIMax * m * m,
	}
	switch {
	case bmi < HealthyBMIMin:
		r.ToGainKG = r.HealthyMinKG - weightKG
	case bmi > HealthyBMIMax:
		r.ToLoseKG = weightKG - r.HealthyMaxKG
	}
	return r, nil
}

/* ─── Body fat (US Navy) ──────────────────────────────────────────────── */

// Body fat results are clamped into this range.
const (
	MinBodyFatPct = 2.0
	MaxBodyFatPct = 60.0
)

// BodyFatInput holds circumference measurements in cm. HipCM is only read for
// women and may be zero for men.
type BodyFatInput struct {
	Sex      Sex
	HeightCM float64
	NeckCM   float64
	WaistCM  float64
	HipCM    float64
}

// BodyFat estimates body-fat percentage with the US Navy circumference
// formula, clamped to [2, 60]. waist must exceed neck: the formula takes
// log10(waist - neck), so that is rejected before evaluation.
func BodyFat(in BodyFatInput) (float64, error) {
	if _, err := ParseSex(string(in.Sex)); err != nil {
		return 0, err
	}
	if err := checkRange("height_cm", "Height (cm)", in.HeightCM, maxHeightCM); err != nil {
		return 0, err
	}
	if err := checkRange("neck_cm", "Neck (cm)", in.NeckCM, maxCircumferenceCM); err != nil {
		return 0, err
	}
	if err := checkRange("waist_cm", "Waist (cm)", in.WaistCM, maxCircumferenceCM); err != nil {
		return 0, err
	}
	if in.Sex == Female {
		if err := checkRange("hip_cm", "Hip (cm)", in.HipCM, maxCircumferenceCM); err != nil {
			return 0, invalid("hip_cm", "Hip (cm) is required for women and must be greater than 0")
		}
	}
	if in.WaistCM-in.NeckCM <= 0 {
		return 0, invalid("waist_cm", "Waist (cm) must be larger than neck (cm)")
	}

	var denom float64
	if in.Sex == Male {
		denom = 1.0324 - 0.19077*math.Log10(in.WaistCM-in.NeckCM) + 0.15456*math.Log10(in.HeightCM)
	} else {
		denom = 1.29579 - 0.35004*math.Log10(in.WaistCM+in.HipCM-in.NeckCM) + 0.22100*math.Log10(in.HeightCM)
	}
	if denom <= 0 {
		return 0, invalid("waist_cm", "Measurements are outside the range the formula supports")
	}
	return clamp(495/denom-450, MinBodyFatPct, MaxBodyFatPct), nil
}

/* ─── Ideal weight ────────────────────────────────────────────────────── */

// IdealWeights holds the classic reference-weight estimates in kg.
type IdealWeights struct {
	Devine   float64 `json:"devine"`
	Robinson float64 `json:"robinson"`
	Miller   float64 `json:"miller"`
	Hamwi    float64 `json:"hamwi"`
	Average  float64 `json:"average"`
}

// idealCoefficients is {base kg, kg per inch over 5 ft} per formula, in the
// order Devine, Robinson, Miller, Hamwi.
var idealCoefficients = map[Sex][4][2]float64{
	Male:   {{50.0, 2.3}, {52.0, 1.9}, {56.2, 1.41}, {48.0, 2.7}},
	Female: {{45.5, 2.3}, {49.0, 1.7}, {53.1, 1.36}, {45.5, 2.2}},
}

// IdealWeight evaluates the Devine, Robinson, Miller and Hamwi formulas on
// inches over five feet (floored at zero) and their arithmetic mean.
func IdealWeight(heightCM float64, sex Sex) (IdealWeights, error) {
	if _, err := ParseSex(string(sex)); err != nil {
		return IdealWeights{}, err
	}
	if err := checkRange("height_cm", "Height (cm)", heightCM, maxHeightCM); err != nil {
		return IdealWeights{}, err
	}

	over5ft := math.Max(0, heightCM/2.54-60)
	c := idealCoefficients[sex]
	w := IdealWeights{
		Devine:   c[0][0] + c[0][1]*over5ft,
		Robinson: c[1][0] + c[1][1]*over5ft,
		Miller:   c[2][0] + c[2][1]*over5ft,
		Hamwi:    c[3][0] + c[3][1]*over5ft,
	}
	w.Average = (w.Devine + w.Robinson + w.Miller + w.Hamwi) / 4
	return w, nil
}

/* ─── Waist-to-height ─────────────────────────────────────────────────── */

// RiskTier grades a waist-to-height ratio.
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
)

// ClassifyWHtR: below 0.5 is low, [0.5, 0.6) moderate, 0.6 and above high.
func ClassifyWHtR(ratio float64) RiskTier {
	switch {
	case ratio < 0.5:
		return RiskLow
	case ratio < 0.6:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// WHtR is a waist-to-height ratio and its tier.
type WHtR struct {
	Ratio float64  `json:"ratio"`
	Tier  RiskTier `json:"tier"`
}

// WaistToHeight divides waist by height, both in cm.
func WaistToHeight(waistCM, heightCM float64) (WHtR, error) {
	if err := checkRange("waist_cm", "Waist (cm)", waistCM, maxCircumferenceCM); err != nil {
		return WHtR{}, err
	}
	if err := checkRange("height_cm", "Height (cm)", heightCM, maxHeightCM); err != nil {
		return WHtR{}, err
	}
	ratio := waistCM / heightCM
	if err := checkFinite("height_cm", "Height (cm) is too small to compute a ratio", ratio); err != nil {
		return WHtR{}, err
	}
	return WHtR{Ratio: ratio, Tier: ClassifyWHtR(ratio)}, nil
}
