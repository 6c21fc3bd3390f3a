package domain

// Grade is the letter grade derived from a user's weighted activity score.
type Grade string

// Grades, from highest to lowest.
const (
	GradeS     Grade = "S"
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
)

// Score computes the weighted activity score for a user. Each term is capped
// independently before summing, so the maximum possible score is 325.
// Following is deliberately not scored.
func Score(s UserStats) float64 {
	score := 0.0
	score += min(float64(s.Repos)*2, 50)
	score += min(float64(s.Followers), 50)
	score += min(float64(s.Stars)*3, 75)
	score += min(float64(s.PRs)*5, 75)
	score += min(float64(s.Commits)*0.5, 50)
	score += min(float64(s.Issues)*2, 25)
	return score
}

// GradeFor maps a score to its grade. Thresholds are checked in descending
// order so the first satisfied band wins: a score of exactly 200 is A+.
func GradeFor(score float64) Grade {
	switch {
	case score >= 300:
		return GradeS
	case score >= 200:
		return GradeAPlus
	case score >= 150:
		return GradeA
	case score >= 100:
		return GradeBPlus
	case score >= 75:
		return GradeB
	case score >= 50:
		return GradeCPlus
	case score >= 25:
		return GradeC
	default:
		return GradeD
	}
}

// GradeOf is the composition of Score and GradeFor.
func GradeOf(s UserStats) Grade {
	return GradeFor(Score(s))
}
