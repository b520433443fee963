package service

import (
	"fmt"
	"sort"
	"strings"

	"mpincheck/internal/keypad"
	"mpincheck/internal/models"
)

// Structural detectors inspect the MPIN digits alone. Each is a pure
// function returning zero or more tagged findings under COMMON_PATTERN.
// All of them assume a validated MPIN (digits only, length 4 or 6).

func commonFinding(kind models.FindingKind, explanation string) models.Finding {
	return models.Finding{
		Category:    models.CategoryCommonPattern,
		Kind:        kind,
		Explanation: explanation,
	}
}

// detectRepetitive reports an MPIN whose digits are all identical.
func detectRepetitive(mpin string) []models.Finding {
	for i := 1; i < len(mpin); i++ {
		if mpin[i] != mpin[0] {
			return nil
		}
	}
	return []models.Finding{
		commonFinding(models.KindRepetitive, fmt.Sprintf("All digits are same (%c)", mpin[0])),
	}
}

// detectOrdering reports non-strict monotonic runs. Equal adjacent digits
// satisfy both directions, so an all-same MPIN fires ascending and
// descending alongside the repetitive finding.
func detectOrdering(mpin string) []models.Finding {
	ascending, descending := true, true
	for i := 0; i+1 < len(mpin); i++ {
		if mpin[i] > mpin[i+1] {
			ascending = false
		}
		if mpin[i] < mpin[i+1] {
			descending = false
		}
	}

	var findings []models.Finding
	if ascending {
		findings = append(findings, commonFinding(models.KindAscending, "Digits are in ascending order"))
	}
	if descending {
		findings = append(findings, commonFinding(models.KindDescending, "Digits are in descending order"))
	}
	return findings
}

// detectArithmetic reports a constant difference between consecutive digits.
func detectArithmetic(mpin string) []models.Finding {
	if len(mpin) < 2 {
		return nil
	}
	diff := int(mpin[1]) - int(mpin[0])
	for i := 1; i+1 < len(mpin); i++ {
		if int(mpin[i+1])-int(mpin[i]) != diff {
			return nil
		}
	}
	return []models.Finding{
		commonFinding(models.KindArithmetic, fmt.Sprintf("Arithmetic progression with difference %d", diff)),
	}
}

// detectGeometric reports a constant real-valued ratio between consecutive
// digits. Any zero digit disqualifies the MPIN, which also guards the
// division below.
func detectGeometric(mpin string) []models.Finding {
	if len(mpin) < 2 {
		return nil
	}
	for i := 0; i < len(mpin); i++ {
		if mpin[i] == '0' {
			return nil
		}
	}
	ratio := float64(mpin[1]-'0') / float64(mpin[0]-'0')
	for i := 1; i+1 < len(mpin); i++ {
		if float64(mpin[i+1]-'0')/float64(mpin[i]-'0') != ratio {
			return nil
		}
	}
	return []models.Finding{
		commonFinding(models.KindGeometric, fmt.Sprintf("Geometric progression with ratio %g", ratio)),
	}
}

// detectRepeatedPair reports an MPIN built from one repeated 2-digit chunk.
// A trailing odd character is discarded before comparing chunks.
func detectRepeatedPair(mpin string) []models.Finding {
	if len(mpin) < 4 {
		return nil
	}
	first := mpin[0:2]
	for i := 2; i+1 < len(mpin); i += 2 {
		if mpin[i:i+2] != first {
			return nil
		}
	}
	return []models.Finding{
		commonFinding(models.KindRepeatedPair, fmt.Sprintf("Repeated pair pattern (%s)", first)),
	}
}

// detectRepeatedSequence reports every block length whose repetition tiles
// the MPIN exactly. All matching block lengths are recorded, so "1111"
// yields findings for blocks "1" and "11".
func detectRepeatedSequence(mpin string) []models.Finding {
	if len(mpin) < 4 {
		return nil
	}
	var findings []models.Finding
	for i := 1; i <= len(mpin)/2; i++ {
		if len(mpin)%i != 0 {
			continue
		}
		if strings.Repeat(mpin[:i], len(mpin)/i) == mpin {
			findings = append(findings, commonFinding(models.KindRepeatedSequence,
				fmt.Sprintf("Repeated sequence (%s)", mpin[:i])))
		}
	}
	return findings
}

// detectKeypadPatterns reports geometric alignments on the 12-key pad:
// row, column and diagonal triples (forward, reversed, and doubled) found
// as raw substrings, plus MPINs confined to the four corner keys.
func detectKeypadPatterns(mpin string) []models.Finding {
	var findings []models.Finding

	families := []struct {
		kind    models.FindingKind
		name    string
		lower   string
		triples []string
	}{
		{models.KindKeypadHorizontal, "Horizontal", "horizontal", keypad.HorizontalTriples},
		{models.KindKeypadVertical, "Vertical", "vertical", keypad.VerticalTriples},
		{models.KindKeypadDiagonal, "Diagonal", "diagonal", keypad.DiagonalTriples},
	}

	for _, fam := range families {
		for _, triple := range fam.triples {
			reversed := reverse(triple)
			if strings.Contains(mpin, triple) || strings.Contains(mpin, reversed) {
				findings = append(findings, commonFinding(fam.kind,
					fmt.Sprintf("%s keypad pattern (%s)", fam.name, triple)))
			}
			if strings.Contains(mpin, triple+triple) || strings.Contains(mpin, reversed+reversed) {
				findings = append(findings, commonFinding(fam.kind,
					fmt.Sprintf("Repeated %s keypad pattern (%s)", fam.lower, triple)))
			}
		}
	}

	if f, ok := detectCornerPattern(mpin); ok {
		findings = append(findings, f)
	}
	return findings
}

// detectCornerPattern fires when every digit of the MPIN is a corner key
// and at least two distinct corners are used.
func detectCornerPattern(mpin string) (models.Finding, bool) {
	distinct := make(map[byte]bool)
	for i := 0; i < len(mpin); i++ {
		if !keypad.IsCorner(mpin[i]) {
			return models.Finding{}, false
		}
		distinct[mpin[i]] = true
	}

	corners := make([]string, 0, len(distinct))
	for d := range distinct {
		corners = append(corners, string(d))
	}
	sort.Strings(corners)

	switch len(corners) {
	case 4:
		return commonFinding(models.KindKeypadCorner, "Common keypad pattern using all four corners"), true
	case 3:
		return commonFinding(models.KindKeypadCorner,
			fmt.Sprintf("Common keypad pattern using three corners: %s", strings.Join(corners, ", "))), true
	case 2:
		return commonFinding(models.KindKeypadCorner,
			fmt.Sprintf("Common keypad pattern using two corners: %s", strings.Join(corners, ", "))), true
	default:
		return models.Finding{}, false
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
