package service

import (
	"mpincheck/internal/models"
)

// EvaluatorService scores the predictability of a 4 or 6 digit MPIN against
// structural weakness patterns and the holder's demographic dates. It holds
// no per-call state and is safe for concurrent use.
type EvaluatorService struct{}

// NewEvaluatorService creates a new evaluator service.
func NewEvaluatorService() *EvaluatorService {
	return &EvaluatorService{}
}

// Evaluate runs every detector over the MPIN and aggregates the findings
// into a Result. Dates are optional DD-MM-YYYY strings; an empty or
// unparsable date contributes no demographic patterns but never aborts the
// evaluation. A malformed MPIN short-circuits to a terminal
// INVALID_FORMAT result before any detector runs.
func (s *EvaluatorService) Evaluate(mpin, selfDOB, spouseDOB, anniversary string) models.Result {
	if !isValidMPIN(mpin) {
		return models.Result{
			Strength:   models.StrengthWeak,
			Percentage: 0,
			Color:      models.ColorRed,
			Findings: map[models.Category][]models.Finding{
				models.CategoryInvalidFormat: {{
					Category:    models.CategoryInvalidFormat,
					Kind:        models.KindInvalidFormat,
					Explanation: "MPIN must be 4 or 6 digits",
				}},
			},
		}
	}

	findings := make(map[models.Category][]models.Finding)
	add := func(fs ...models.Finding) {
		for _, f := range fs {
			findings[f.Category] = append(findings[f.Category], f)
		}
	}

	add(detectRepeatedPair(mpin)...)
	add(detectRepeatedSequence(mpin)...)
	add(detectKeypadPatterns(mpin)...)
	add(detectArithmetic(mpin)...)
	add(detectGeometric(mpin)...)
	add(detectRepetitive(mpin)...)
	add(detectOrdering(mpin)...)

	dates := parseDates(selfDOB, spouseDOB, anniversary)

	if f, ok := detectCombined(mpin, dates); ok {
		add(f)
	}
	for _, d := range dates {
		if f, ok := detectDemographic(mpin, d); ok {
			add(f)
		}
	}

	if len(findings) == 0 {
		findings = nil
	}
	percentage := scoreFindings(findings)
	strength, color := verdictFor(percentage)

	return models.Result{
		Strength:   strength,
		Percentage: percentage,
		Color:      color,
		Findings:   findings,
	}
}

// isValidMPIN reports whether the raw input is exactly 4 or 6 ASCII
// decimal digits.
func isValidMPIN(mpin string) bool {
	if len(mpin) != 4 && len(mpin) != 6 {
		return false
	}
	for i := 0; i < len(mpin); i++ {
		if mpin[i] < '0' || mpin[i] > '9' {
			return false
		}
	}
	return true
}

// parseDates builds the labeled date list in declaration order: self,
// spouse, anniversary. Absent or malformed dates are silently dropped.
func parseDates(selfDOB, spouseDOB, anniversary string) []demographicDate {
	var dates []demographicDate
	if d, ok := parseDemographicDate("self", models.CategoryDOBSelf,
		"your birth year", "your date of birth", selfDOB); ok {
		dates = append(dates, d)
	}
	if d, ok := parseDemographicDate("spouse", models.CategoryDOBSpouse,
		"spouse's birth year", "spouse's date of birth", spouseDOB); ok {
		dates = append(dates, d)
	}
	if d, ok := parseDemographicDate("anniversary", models.CategoryAnniversary,
		"wedding anniversary year", "wedding anniversary date", anniversary); ok {
		dates = append(dates, d)
	}
	return dates
}
