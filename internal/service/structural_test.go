package service

import (
	"testing"

	"mpincheck/internal/models"
)

func kindsOf(findings []models.Finding) []models.FindingKind {
	kinds := make([]models.FindingKind, len(findings))
	for i, f := range findings {
		kinds[i] = f.Kind
	}
	return kinds
}

func containsKind(findings []models.Finding, kind models.FindingKind) bool {
	for _, f := range findings {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

func TestDetectRepetitive(t *testing.T) {
	tests := []struct {
		name    string
		mpin    string
		want    bool
		wantMsg string
	}{
		{
			name:    "all same four digits",
			mpin:    "7777",
			want:    true,
			wantMsg: "All digits are same (7)",
		},
		{
			name:    "all same six digits",
			mpin:    "000000",
			want:    true,
			wantMsg: "All digits are same (0)",
		},
		{
			name: "one digit differs",
			mpin: "7774",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := detectRepetitive(tt.mpin)
			if (len(findings) > 0) != tt.want {
				t.Fatalf("detectRepetitive(%q) fired = %v, want %v", tt.mpin, len(findings) > 0, tt.want)
			}
			if tt.want && findings[0].Explanation != tt.wantMsg {
				t.Errorf("explanation = %q, want %q", findings[0].Explanation, tt.wantMsg)
			}
		})
	}
}

func TestDetectOrdering(t *testing.T) {
	tests := []struct {
		name           string
		mpin           string
		wantAscending  bool
		wantDescending bool
	}{
		{
			name:          "strictly ascending",
			mpin:          "1234",
			wantAscending: true,
		},
		{
			name:           "strictly descending",
			mpin:           "9753",
			wantDescending: true,
		},
		{
			name:          "ascending with equal run",
			mpin:          "1224",
			wantAscending: true,
		},
		{
			name:           "equal run satisfies both directions",
			mpin:           "5555",
			wantAscending:  true,
			wantDescending: true,
		},
		{
			name: "unordered",
			mpin: "1524",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := detectOrdering(tt.mpin)
			if got := containsKind(findings, models.KindAscending); got != tt.wantAscending {
				t.Errorf("ascending = %v, want %v", got, tt.wantAscending)
			}
			if got := containsKind(findings, models.KindDescending); got != tt.wantDescending {
				t.Errorf("descending = %v, want %v", got, tt.wantDescending)
			}
		})
	}
}

func TestDetectArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		mpin    string
		want    bool
		wantMsg string
	}{
		{
			name:    "difference one",
			mpin:    "1234",
			want:    true,
			wantMsg: "Arithmetic progression with difference 1",
		},
		{
			name:    "difference two",
			mpin:    "2468",
			want:    true,
			wantMsg: "Arithmetic progression with difference 2",
		},
		{
			name:    "negative difference",
			mpin:    "9630",
			want:    true,
			wantMsg: "Arithmetic progression with difference -3",
		},
		{
			name:    "zero difference",
			mpin:    "4444",
			want:    true,
			wantMsg: "Arithmetic progression with difference 0",
		},
		{
			name: "no constant difference",
			mpin: "1235",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := detectArithmetic(tt.mpin)
			if (len(findings) > 0) != tt.want {
				t.Fatalf("detectArithmetic(%q) fired = %v, want %v", tt.mpin, len(findings) > 0, tt.want)
			}
			if tt.want && findings[0].Explanation != tt.wantMsg {
				t.Errorf("explanation = %q, want %q", findings[0].Explanation, tt.wantMsg)
			}
		})
	}
}

func TestDetectGeometric(t *testing.T) {
	tests := []struct {
		name    string
		mpin    string
		want    bool
		wantMsg string
	}{
		{
			name:    "ratio two",
			mpin:    "1248",
			want:    true,
			wantMsg: "Geometric progression with ratio 2",
		},
		{
			name: "non-constant ratio",
			mpin: "9631",
			want: false,
		},
		{
			name:    "ratio one",
			mpin:    "3333",
			want:    true,
			wantMsg: "Geometric progression with ratio 1",
		},
		{
			name: "zero digit disqualifies",
			mpin: "1240",
			want: false,
		},
		{
			name: "no constant ratio",
			mpin: "1245",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := detectGeometric(tt.mpin)
			if (len(findings) > 0) != tt.want {
				t.Fatalf("detectGeometric(%q) fired = %v, want %v", tt.mpin, len(findings) > 0, tt.want)
			}
			if tt.want && findings[0].Explanation != tt.wantMsg {
				t.Errorf("explanation = %q, want %q", findings[0].Explanation, tt.wantMsg)
			}
		})
	}
}

func TestDetectGeometricHalfRatio(t *testing.T) {
	// 8421 halves at every step; the ratio is real-valued, not integer.
	findings := detectGeometric("8421")
	if len(findings) != 1 {
		t.Fatalf("detectGeometric(\"8421\") returned %d findings, want 1", len(findings))
	}
	if findings[0].Explanation != "Geometric progression with ratio 0.5" {
		t.Errorf("explanation = %q", findings[0].Explanation)
	}
}

func TestDetectRepeatedPair(t *testing.T) {
	tests := []struct {
		name string
		mpin string
		want bool
	}{
		{
			name: "repeated pair four digits",
			mpin: "2323",
			want: true,
		},
		{
			name: "repeated pair six digits",
			mpin: "454545",
			want: true,
		},
		{
			name: "different pairs",
			mpin: "2324",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := detectRepeatedPair(tt.mpin)
			if (len(findings) > 0) != tt.want {
				t.Errorf("detectRepeatedPair(%q) fired = %v, want %v", tt.mpin, len(findings) > 0, tt.want)
			}
		})
	}
}

func TestDetectRepeatedSequence(t *testing.T) {
	tests := []struct {
		name       string
		mpin       string
		wantBlocks []string
	}{
		{
			name:       "two digit block",
			mpin:       "2323",
			wantBlocks: []string{"23"},
		},
		{
			name:       "all block lengths recorded",
			mpin:       "1111",
			wantBlocks: []string{"1", "11"},
		},
		{
			name:       "three digit block in six digit pin",
			mpin:       "123123",
			wantBlocks: []string{"123"},
		},
		{
			name:       "no tiling block",
			mpin:       "1234",
			wantBlocks: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := detectRepeatedSequence(tt.mpin)
			if len(findings) != len(tt.wantBlocks) {
				t.Fatalf("detectRepeatedSequence(%q) = %d findings, want %d: %v",
					tt.mpin, len(findings), len(tt.wantBlocks), kindsOf(findings))
			}
			for i, block := range tt.wantBlocks {
				want := "Repeated sequence (" + block + ")"
				if findings[i].Explanation != want {
					t.Errorf("finding %d explanation = %q, want %q", i, findings[i].Explanation, want)
				}
			}
		})
	}
}

func TestDetectKeypadPatterns(t *testing.T) {
	tests := []struct {
		name     string
		mpin     string
		wantKind models.FindingKind
		wantMsg  string
	}{
		{
			name:     "horizontal row",
			mpin:     "1234",
			wantKind: models.KindKeypadHorizontal,
			wantMsg:  "Horizontal keypad pattern (123)",
		},
		{
			name:     "reversed horizontal row",
			mpin:     "9876",
			wantKind: models.KindKeypadHorizontal,
			wantMsg:  "Horizontal keypad pattern (789)",
		},
		{
			name:     "vertical column",
			mpin:     "2580",
			wantKind: models.KindKeypadVertical,
			wantMsg:  "Vertical keypad pattern (258)",
		},
		{
			name:     "diagonal",
			mpin:     "1590",
			wantKind: models.KindKeypadDiagonal,
			wantMsg:  "Diagonal keypad pattern (159)",
		},
		{
			name:     "doubled diagonal",
			mpin:     "357357",
			wantKind: models.KindKeypadDiagonal,
			wantMsg:  "Repeated diagonal keypad pattern (357)",
		},
		{
			name:     "two corners",
			mpin:     "1919",
			wantKind: models.KindKeypadCorner,
			wantMsg:  "Common keypad pattern using two corners: 1, 9",
		},
		{
			name:     "three corners",
			mpin:     "1373",
			wantKind: models.KindKeypadCorner,
			wantMsg:  "Common keypad pattern using three corners: 1, 3, 7",
		},
		{
			name:     "four corners",
			mpin:     "1379",
			wantKind: models.KindKeypadCorner,
			wantMsg:  "Common keypad pattern using all four corners",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := detectKeypadPatterns(tt.mpin)
			for _, f := range findings {
				if f.Kind == tt.wantKind && f.Explanation == tt.wantMsg {
					return
				}
			}
			t.Errorf("detectKeypadPatterns(%q) missing %s %q; got %+v", tt.mpin, tt.wantKind, tt.wantMsg, findings)
		})
	}
}

func TestDetectKeypadPatternsNoMatch(t *testing.T) {
	for _, mpin := range []string{"2749", "8264", "505050"} {
		if findings := detectKeypadPatterns(mpin); len(findings) != 0 {
			t.Errorf("detectKeypadPatterns(%q) = %+v, want none", mpin, findings)
		}
	}
}

func TestDetectCornerPatternSingleCornerIgnored(t *testing.T) {
	// A single repeated corner digit is handled by the repetitive detector,
	// not the corner detector.
	if _, ok := detectCornerPattern("1111"); ok {
		t.Error("detectCornerPattern(\"1111\") fired, want no finding for one distinct corner")
	}
}
