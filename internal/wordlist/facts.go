// Package wordlist generates candidate password lists from personal facts.
package wordlist

import (
	"sort"
	"strings"
)

// Category groups related personal facts.
type Category string

const (
	CategoryName      Category = "name"
	CategoryBirthdate Category = "birthdate"
	CategoryPet       Category = "pet"
	CategoryTeam      Category = "team"
	CategoryCustom    Category = "custom"
)

// Categories returns the known categories in seeding order.
func Categories() []Category {
	return []Category{
		CategoryName,
		CategoryBirthdate,
		CategoryPet,
		CategoryTeam,
		CategoryCustom,
	}
}

// Facts maps a category to its raw values. Values may repeat across
// categories.
type Facts map[Category][]string

// NewFacts returns an empty fact set.
func NewFacts() Facts {
	return make(Facts)
}

// Add appends values to a category.
func (f Facts) Add(c Category, values ...string) {
	f[c] = append(f[c], values...)
}

// Len returns the number of raw values across all categories.
func (f Facts) Len() int {
	n := 0
	for _, vs := range f {
		n += len(vs)
	}
	return n
}

// orderedCategories returns the known categories followed by any extra
// keys in f, sorted, so iteration is deterministic.
func (f Facts) orderedCategories() []Category {
	known := Categories()
	seen := make(map[Category]bool, len(known))
	for _, c := range known {
		seen[c] = true
	}

	var extra []Category
	for c := range f {
		if !seen[c] {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(known, extra...)
}

// SplitList splits a comma-separated value into trimmed, non-empty parts.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
