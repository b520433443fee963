package models

import "time"

// Strength is the overall verdict for an MPIN.
type Strength string

const (
	StrengthStrong Strength = "STRONG"
	StrengthWeak   Strength = "WEAK"
)

// Color tags the verdict for presentation (strength bar, badges).
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
)

// Category groups findings for display and reporting.
type Category string

const (
	CategoryCommonPattern Category = "COMMON_PATTERN"
	CategoryDOBSelf       Category = "DEMOGRAPHIC_DOB_SELF"
	CategoryDOBSpouse     Category = "DEMOGRAPHIC_DOB_SPOUSE"
	CategoryAnniversary   Category = "DEMOGRAPHIC_ANNIVERSARY"
	CategoryCombined      Category = "DEMOGRAPHIC_COMBINED"
	CategoryInvalidFormat Category = "INVALID_FORMAT"
)

// FindingKind identifies which detector rule matched. The scorer keys its
// deduction table off this value, never off the rendered explanation text.
type FindingKind string

const (
	KindRepetitive       FindingKind = "REPETITIVE"
	KindAscending        FindingKind = "ASCENDING"
	KindDescending       FindingKind = "DESCENDING"
	KindArithmetic       FindingKind = "ARITHMETIC"
	KindGeometric        FindingKind = "GEOMETRIC"
	KindRepeatedPair     FindingKind = "REPEATED_PAIR"
	KindRepeatedSequence FindingKind = "REPEATED_SEQUENCE"
	KindKeypadHorizontal FindingKind = "KEYPAD_HORIZONTAL"
	KindKeypadVertical   FindingKind = "KEYPAD_VERTICAL"
	KindKeypadDiagonal   FindingKind = "KEYPAD_DIAGONAL"
	KindKeypadCorner     FindingKind = "KEYPAD_CORNER"

	KindYearExact       FindingKind = "YEAR_EXACT"
	KindYearSubsequence FindingKind = "YEAR_SUBSEQUENCE"
	KindDateExact       FindingKind = "DATE_EXACT"
	KindDateSubsequence FindingKind = "DATE_SUBSEQUENCE"

	KindCombinedExact       FindingKind = "COMBINED_EXACT"
	KindCombinedSubsequence FindingKind = "COMBINED_SUBSEQUENCE"

	KindInvalidFormat FindingKind = "INVALID_FORMAT"
)

// Finding is a single weakness reported by a detector.
type Finding struct {
	Category    Category    `json:"category"`
	Kind        FindingKind `json:"kind"`
	Explanation string      `json:"explanation"`
}

// Result is the outcome of evaluating one MPIN. It is derived
// deterministically from the findings and never mutated after creation.
type Result struct {
	Strength   Strength               `json:"strength"`
	Percentage int                    `json:"percentage"`
	Color      Color                  `json:"color"`
	Findings   map[Category][]Finding `json:"findings,omitempty"`
}

// HasFindings reports whether any detector matched.
func (r Result) HasFindings() bool {
	return len(r.Findings) > 0
}

// Categories returns the finding categories present, in the fixed display
// order used throughout the UI and audit log.
func (r Result) Categories() []Category {
	order := []Category{
		CategoryCommonPattern,
		CategoryDOBSelf,
		CategoryDOBSpouse,
		CategoryAnniversary,
		CategoryCombined,
		CategoryInvalidFormat,
	}
	var present []Category
	for _, c := range order {
		if len(r.Findings[c]) > 0 {
			present = append(present, c)
		}
	}
	return present
}

// EvaluationRecord is one row of the evaluation audit log. It carries the
// outcome only; the MPIN itself and the supplied dates are never stored.
type EvaluationRecord struct {
	ID          int64
	Reference   string
	PinLength   int
	Strength    Strength
	Percentage  int
	Categories  string
	Source      string
	EvaluatedAt time.Time
}
