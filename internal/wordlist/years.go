package wordlist

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	fourDigitYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	twoDigitYearRe  = regexp.MustCompile(`\b\d{2}\b`)
)

// twoDigitPivot splits two-digit years: up to the pivot is 20xx, above it
// is 19xx.
const twoDigitPivot = 30

// ParseBirthYear extracts a year from a free-form date. A 4-digit 19xx or
// 20xx token wins; otherwise the last standalone 2-digit token is read as
// a year.
func ParseBirthYear(date string) (int, bool) {
	if m := fourDigitYearRe.FindString(date); m != "" {
		y, err := strconv.Atoi(m)
		return y, err == nil
	}

	ms := twoDigitYearRe.FindAllString(date, -1)
	if len(ms) == 0 {
		return 0, false
	}
	y, err := strconv.Atoi(ms[len(ms)-1])
	if err != nil {
		return 0, false
	}
	if y <= twoDigitPivot {
		return 2000 + y, true
	}
	return 1900 + y, true
}

// candidateYears lists the years to append, in order: current year, birth
// years, then the extended recent and milestone years.
func (g *Generator) candidateYears(facts Facts) []int {
	current := g.tables.Now().Year()
	years := []int{current}

	var births []int
	for _, d := range facts[CategoryBirthdate] {
		if y, ok := ParseBirthYear(d); ok {
			births = append(births, y)
		}
	}
	years = append(years, births...)

	if n := g.tables.RecentYears; n > 0 {
		for i := 1; i <= n; i++ {
			years = append(years, current-i)
		}
		years = append(years, current+1)
	}

	for _, b := range births {
		for _, off := range g.tables.MilestoneOffsets {
			years = append(years, b+off)
		}
	}

	return years
}

// yearSuffixes renders each year in 4-digit then 2-digit form, without
// duplicates.
func yearSuffixes(years []int) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, y := range years {
		add(strconv.Itoa(y))
		add(fmt.Sprintf("%02d", y%100))
	}
	return out
}
