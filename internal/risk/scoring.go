// Package risk derives and scores project risks from a WBS (rule-based) and
// from the raw project scope (model-based), then merges both lists into one
// uniquely numbered register.
package risk

// ProbabilityToPercent maps a 1-5 ordinal score onto a percentage
// (1 -> 20 ... 5 -> 100). Out-of-range scores clamp to [0,100] instead of
// failing.
func ProbabilityToPercent(score int) int {
	p := score * 20
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ImpactToLabel maps an impact score onto a display label:
// <=2 Low / منخفض, ==3 Medium / متوسط, >=4 High / عالي.
func ImpactToLabel(score int, lang string) string {
	switch {
	case score <= 2:
		if lang == "ar" {
			return "منخفض"
		}
		return "Low"
	case score == 3:
		if lang == "ar" {
			return "متوسط"
		}
		return "Medium"
	default:
		if lang == "ar" {
			return "عالي"
		}
		return "High"
	}
}

// ComputeExposure is the product of the raw 1-5 probability and impact
// scores (not their percent/label forms).
func ComputeExposure(probScore, impactScore int) int {
	return probScore * impactScore
}
