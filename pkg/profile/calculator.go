package profile

import "math"

// The four activity tiers the client offers. Matches the oneof validation on
// OnboardProfileRequest.
var ActivityFactors = []float64{1.2, 1.375, 1.55, 1.725}

// CalculateBMR estimates basal metabolic rate via Mifflin-St Jeor:
// 10*weight + 6.25*height - 5*age, +5 for men, -161 for women.
func CalculateBMR(weightKg, heightCm float64, age int, isMale bool) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if isMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// CalculateDailyTarget scales BMR by the activity factor and rounds half up
// to a whole kcal target.
func CalculateDailyTarget(weightKg, heightCm float64, age int, isMale bool, activityFactor float64) int {
	return int(math.Round(CalculateBMR(weightKg, heightCm, age, isMale) * activityFactor))
}

// metricsPlausible rejects garbage input before it reaches the formula.
func metricsPlausible(weightKg, heightCm float64, age int) bool {
	if heightCm < 50 || heightCm > 250 {
		return false
	}
	if weightKg < 10 || weightKg > 400 {
		return false
	}
	if age < 1 || age > 130 {
		return false
	}
	return true
}
