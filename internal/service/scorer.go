package service

import "mpincheck/internal/models"

// StrongThreshold is the minimum percentage for a STRONG verdict.
const StrongThreshold = 70

// deductions maps each finding kind to its score penalty. The table is
// keyed off the structured kind tag, never off explanation text.
var deductions = map[models.FindingKind]int{
	models.KindRepetitive:       35,
	models.KindAscending:        35,
	models.KindDescending:       35,
	models.KindArithmetic:       40,
	models.KindGeometric:        10,
	models.KindKeypadHorizontal: 35,
	models.KindKeypadVertical:   35,
	models.KindKeypadDiagonal:   35,
	models.KindKeypadCorner:     35,
	models.KindRepeatedPair:     35,
	models.KindRepeatedSequence: 35,

	models.KindDateExact:       40,
	models.KindYearExact:       20,
	models.KindYearSubsequence: 5,
	models.KindDateSubsequence: 10,

	models.KindCombinedExact:       20,
	models.KindCombinedSubsequence: 5,
}

// scoreFindings aggregates all findings into a strength percentage.
// Deductions sum across every finding with no cap or dedupe; an empty
// finding set scores 100.
func scoreFindings(findings map[models.Category][]models.Finding) int {
	total := 0
	for _, fs := range findings {
		for _, f := range fs {
			total += deductions[f.Kind]
		}
	}
	score := 100 - total
	if score < 0 {
		score = 0
	}
	return score
}

// verdictFor maps a percentage to its verdict and presentation color.
func verdictFor(percentage int) (models.Strength, models.Color) {
	if percentage >= StrongThreshold {
		return models.StrengthStrong, models.ColorGreen
	}
	return models.StrengthWeak, models.ColorRed
}
