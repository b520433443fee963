package handlers

import (
	"mpincheck/internal/models"
	"mpincheck/internal/repository"
)

type HomeViewData struct {
	Title     string
	CSRFToken string
	Form      EvaluateForm
	Errors    map[string]string
	Result    *ResultView
}

// EvaluateForm carries the submitted form values back into the template
// so the user's input survives a round trip.
type EvaluateForm struct {
	MPIN          string
	MPINType      string // "4" or "6"
	MaritalStatus string
	DOB           string
	SpouseDOB     string
	Anniversary   string
}

// ResultView is the rendered outcome of one evaluation.
type ResultView struct {
	Strength   string
	Percentage int
	Color      string
	IsStrong   bool
	Reference  string
	Groups     []ReasonGroup
}

// ReasonGroup is one display bucket of weakness reasons.
type ReasonGroup struct {
	Heading string
	LeadIn  string
	Items   []string
}

type AdminViewData struct {
	Title        string
	Evaluations  []models.EvaluationRecord
	Stats        *repository.Stats
	AuditEnabled bool
	CSRFToken    string
	Error        string
	Success      string
}

// groupReasons buckets findings the way the results page presents them:
// common patterns first, then all demographic matches, then format issues.
func groupReasons(result models.Result) []ReasonGroup {
	buckets := []struct {
		heading    string
		leadIn     map[models.Category]string
		categories []models.Category
	}{
		{
			heading: "Common Patterns",
			leadIn: map[models.Category]string{
				models.CategoryCommonPattern: "This MPIN is commonly used because:",
			},
			categories: []models.Category{models.CategoryCommonPattern},
		},
		{
			heading: "Demographic Matches",
			leadIn: map[models.Category]string{
				models.CategoryCombined: "This MPIN contains patterns from combined dates:",
			},
			categories: []models.Category{
				models.CategoryDOBSelf,
				models.CategoryDOBSpouse,
				models.CategoryAnniversary,
				models.CategoryCombined,
			},
		},
		{
			heading:    "Format Issues",
			categories: []models.Category{models.CategoryInvalidFormat},
		},
	}

	var groups []ReasonGroup
	for _, bucket := range buckets {
		group := ReasonGroup{Heading: bucket.heading}
		for _, category := range bucket.categories {
			findings := result.Findings[category]
			if len(findings) == 0 {
				continue
			}
			if leadIn, ok := bucket.leadIn[category]; ok && group.LeadIn == "" {
				group.LeadIn = leadIn
			}
			for _, finding := range findings {
				group.Items = append(group.Items, finding.Explanation)
			}
		}
		if len(group.Items) > 0 {
			groups = append(groups, group)
		}
	}

	return groups
}

func newResultView(result models.Result, reference string) *ResultView {
	return &ResultView{
		Strength:   string(result.Strength),
		Percentage: result.Percentage,
		Color:      string(result.Color),
		IsStrong:   result.Strength == models.StrengthStrong,
		Reference:  reference,
		Groups:     groupReasons(result),
	}
}
