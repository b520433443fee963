package service

import (
	"testing"

	"mpincheck/internal/models"
)

func TestScoreFindings(t *testing.T) {
	tests := []struct {
		name     string
		findings map[models.Category][]models.Finding
		want     int
	}{
		{
			name:     "no findings scores 100",
			findings: nil,
			want:     100,
		},
		{
			name: "single structural finding",
			findings: map[models.Category][]models.Finding{
				models.CategoryCommonPattern: {
					{Kind: models.KindKeypadDiagonal},
				},
			},
			want: 65,
		},
		{
			name: "deductions sum across findings",
			findings: map[models.Category][]models.Finding{
				models.CategoryCommonPattern: {
					{Kind: models.KindArithmetic},
					{Kind: models.KindAscending},
				},
			},
			want: 25,
		},
		{
			name: "deductions sum across categories",
			findings: map[models.Category][]models.Finding{
				models.CategoryCommonPattern: {
					{Kind: models.KindGeometric},
				},
				models.CategoryDOBSelf: {
					{Kind: models.KindYearExact},
				},
			},
			want: 70,
		},
		{
			name: "score floors at zero",
			findings: map[models.Category][]models.Finding{
				models.CategoryCommonPattern: {
					{Kind: models.KindRepetitive},
					{Kind: models.KindAscending},
					{Kind: models.KindDescending},
					{Kind: models.KindArithmetic},
				},
			},
			want: 0,
		},
		{
			name: "demographic weights",
			findings: map[models.Category][]models.Finding{
				models.CategoryDOBSpouse: {
					{Kind: models.KindDateSubsequence},
				},
				models.CategoryCombined: {
					{Kind: models.KindCombinedSubsequence},
				},
			},
			want: 85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreFindings(tt.findings); got != tt.want {
				t.Errorf("scoreFindings() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeductionTable(t *testing.T) {
	tests := []struct {
		kind models.FindingKind
		want int
	}{
		{models.KindRepetitive, 35},
		{models.KindAscending, 35},
		{models.KindDescending, 35},
		{models.KindArithmetic, 40},
		{models.KindGeometric, 10},
		{models.KindKeypadHorizontal, 35},
		{models.KindKeypadVertical, 35},
		{models.KindKeypadDiagonal, 35},
		{models.KindKeypadCorner, 35},
		{models.KindRepeatedPair, 35},
		{models.KindRepeatedSequence, 35},
		{models.KindDateExact, 40},
		{models.KindYearExact, 20},
		{models.KindYearSubsequence, 5},
		{models.KindDateSubsequence, 10},
		{models.KindCombinedExact, 20},
		{models.KindCombinedSubsequence, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := deductions[tt.kind]; got != tt.want {
				t.Errorf("deduction for %s = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		percentage   int
		wantStrength models.Strength
		wantColor    models.Color
	}{
		{100, models.StrengthStrong, models.ColorGreen},
		{70, models.StrengthStrong, models.ColorGreen},
		{69, models.StrengthWeak, models.ColorRed},
		{65, models.StrengthWeak, models.ColorRed},
		{0, models.StrengthWeak, models.ColorRed},
	}

	for _, tt := range tests {
		strength, color := verdictFor(tt.percentage)
		if strength != tt.wantStrength || color != tt.wantColor {
			t.Errorf("verdictFor(%d) = (%s, %s), want (%s, %s)",
				tt.percentage, strength, color, tt.wantStrength, tt.wantColor)
		}
	}
}
