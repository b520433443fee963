package service

import (
	"fmt"
	"time"

	"mpincheck/internal/models"
)

// DateLayout is the textual day-month-year form accepted for all
// demographic dates.
const DateLayout = "02-01-2006"

// demographicDate is one parsed, labeled date supplied by the holder.
type demographicDate struct {
	label    string
	category models.Category
	yearNoun string
	dateNoun string
	raw      string
	day      int
	month    int
	year     int
}

// parseDemographicDate parses a raw date string. A malformed or empty value
// degrades to "no patterns from this date" rather than failing the whole
// evaluation.
func parseDemographicDate(label string, category models.Category, yearNoun, dateNoun, raw string) (demographicDate, bool) {
	if raw == "" {
		return demographicDate{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return demographicDate{}, false
	}
	return demographicDate{
		label:    label,
		category: category,
		yearNoun: yearNoun,
		dateNoun: dateNoun,
		raw:      raw,
		day:      t.Day(),
		month:    int(t.Month()),
		year:     t.Year(),
	}, true
}

func (d demographicDate) dd() string   { return fmt.Sprintf("%02d", d.day) }
func (d demographicDate) mm() string   { return fmt.Sprintf("%02d", d.month) }
func (d demographicDate) yy() string   { return fmt.Sprintf("%02d", d.year%100) }
func (d demographicDate) yyyy() string { return fmt.Sprintf("%04d", d.year) }

// yearPatterns derives the year family: 4-digit year, then 2-digit year.
func (d demographicDate) yearPatterns() []string {
	return []string{d.yyyy(), d.yy()}
}

// datePatterns derives the date-component family: the six 2-component
// concatenations followed by the four 3-component orders.
func (d demographicDate) datePatterns() []string {
	dd, mm, yy := d.dd(), d.mm(), d.yy()
	return []string{
		dd + mm,
		mm + dd,
		yy + mm,
		mm + yy,
		yy + dd,
		dd + yy,
		dd + mm + yy,
		yy + mm + dd,
		mm + dd + yy,
		yy + dd + mm,
	}
}

// isSubsequence reports whether pattern appears in mpin in order but not
// necessarily contiguously. Single-character patterns never count.
func isSubsequence(pattern, mpin string) bool {
	if len(pattern) <= 1 {
		return false
	}
	idx := 0
	for i := 0; i < len(mpin) && idx < len(pattern); i++ {
		if mpin[i] == pattern[idx] {
			idx++
		}
	}
	return idx == len(pattern)
}

// detectDemographic checks one date against the MPIN, producing at most one
// finding. Within each family patterns are tried in order, exact match
// before subsequence, and the first hit wins. The date-component family is
// checked before the year family: every ddmmyy pin carries the 2-digit year
// as a trailing subsequence, so the reverse order could never report a full
// date match.
func detectDemographic(mpin string, d demographicDate) (models.Finding, bool) {
	if f, ok := matchFamily(mpin, d.datePatterns(), d, d.dateNoun,
		models.KindDateExact, models.KindDateSubsequence); ok {
		return f, true
	}
	return matchFamily(mpin, d.yearPatterns(), d, d.yearNoun,
		models.KindYearExact, models.KindYearSubsequence)
}

func matchFamily(mpin string, patterns []string, d demographicDate, noun string,
	exactKind, subseqKind models.FindingKind) (models.Finding, bool) {
	for _, pattern := range patterns {
		if len(pattern) == len(mpin) && pattern == mpin {
			return models.Finding{
				Category:    d.category,
				Kind:        exactKind,
				Explanation: fmt.Sprintf("Match with %s (%s)", noun, d.raw),
			}, true
		}
		if isSubsequence(pattern, mpin) {
			return models.Finding{
				Category:    d.category,
				Kind:        subseqKind,
				Explanation: fmt.Sprintf("Contains subsequence from %s (%s)", noun, d.raw),
			}, true
		}
	}
	return models.Finding{}, false
}

// combinedComponent is one zero-padded field of a date taking part in a
// combined pattern.
type combinedComponent struct {
	field string
	value string
	owner string
}

// combinedPatterns builds the 18 two-field concatenations for a date pair:
// both orders of day+day, month+month, day+month, month+day, year+year,
// day+year and month+year across the two dates.
func combinedPatterns(d1, d2 demographicDate) [][2]combinedComponent {
	day1 := combinedComponent{"day", d1.dd(), d1.label}
	mon1 := combinedComponent{"month", d1.mm(), d1.label}
	yr1 := combinedComponent{"year", d1.yy(), d1.label}
	day2 := combinedComponent{"day", d2.dd(), d2.label}
	mon2 := combinedComponent{"month", d2.mm(), d2.label}
	yr2 := combinedComponent{"year", d2.yy(), d2.label}

	return [][2]combinedComponent{
		{day1, day2}, {day2, day1},
		{mon1, mon2}, {mon2, mon1},
		{day1, mon2}, {mon2, day1},
		{mon1, day2}, {day2, mon1},
		{yr1, yr2}, {yr2, yr1},
		{day1, yr2}, {yr2, day1},
		{mon1, yr2}, {yr2, mon1},
		{day2, yr1}, {yr1, day2},
		{mon2, yr1}, {yr1, mon2},
	}
}

// detectCombined checks every unordered pair of supplied dates for combined
// patterns. The double loop stops at the first matching pair, so at most one
// combined finding is ever produced.
func detectCombined(mpin string, dates []demographicDate) (models.Finding, bool) {
	for i := 0; i < len(dates); i++ {
		for j := i + 1; j < len(dates); j++ {
			d1, d2 := dates[i], dates[j]
			for _, pair := range combinedPatterns(d1, d2) {
				pattern := pair[0].value + pair[1].value
				if len(pattern) == len(mpin) && pattern == mpin {
					return models.Finding{
						Category: models.CategoryCombined,
						Kind:     models.KindCombinedExact,
						Explanation: fmt.Sprintf("Match with combined pattern (%s from %s DOB %s + %s from %s DOB %s)",
							pair[0].field, pair[0].owner, pair[0].value,
							pair[1].field, pair[1].owner, pair[1].value),
					}, true
				}
				if isSubsequence(pattern, mpin) {
					return models.Finding{
						Category: models.CategoryCombined,
						Kind:     models.KindCombinedSubsequence,
						Explanation: fmt.Sprintf("Contains subsequence from combined %s and %s DOB pattern",
							d1.label, d2.label),
					}, true
				}
			}
		}
	}
	return models.Finding{}, false
}
