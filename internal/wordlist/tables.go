package wordlist

import (
	"maps"
	"slices"
	"time"
)

// DefaultMaxWords is the usual cap for a wordlist.
const DefaultMaxWords = 50_000

// Config selects the transforms applied to the seed words.
type Config struct {
	Leetspeak      bool `json:"leetspeak"`
	CaseVariations bool `json:"case_variations"`
	YearAppend     bool `json:"year_append"`
	Affixes        bool `json:"affixes"`

	// SplitNames also seeds each part of a multi-word name.
	SplitNames bool `json:"split_names"`

	// MaxWords caps the output. Zero or less keeps nothing.
	MaxWords int `json:"max_words"`
}

// DefaultConfig enables every transform.
func DefaultConfig() Config {
	return Config{
		Leetspeak:      true,
		CaseVariations: true,
		YearAppend:     true,
		Affixes:        true,
		SplitNames:     true,
		MaxWords:       DefaultMaxWords,
	}
}

func (c Config) limit() int {
	if c.MaxWords < 0 {
		return 0
	}
	return c.MaxWords
}

// Tables holds the substitution and affix data used by a Generator. A
// Generator copies its Tables on construction, so later edits to the
// value passed in have no effect.
type Tables struct {
	// Leet maps a lowercase rune to its substitute; matching ignores case.
	Leet map[rune]rune

	Prefixes []string
	Suffixes []string

	// RecentYears adds that many years before the current one, plus next
	// year.
	RecentYears int

	// MilestoneOffsets adds birth year + offset for each parsed birth year.
	MilestoneOffsets []int

	// Now supplies the current year.
	Now func() time.Time
}

// DefaultTables returns the standard substitution table and affixes.
func DefaultTables() Tables {
	return Tables{
		Leet: map[rune]rune{
			'a': '@',
			'e': '3',
			'i': '1',
			'o': '0',
			's': '$',
			't': '7',
		},
		Prefixes: []string{"my", "the", "super", "best", "cool", "new"},
		Suffixes: []string{"!", "!!", "123", "1", "01", "x", "er", "est"},
		Now:      time.Now,
	}
}

// ExtendedTables widens the year list with recent years and common
// milestones (finishing school and college).
func ExtendedTables() Tables {
	t := DefaultTables()
	t.RecentYears = 5
	t.MilestoneOffsets = []int{18, 22}
	return t
}

func (t Tables) clone() Tables {
	c := t
	c.Leet = maps.Clone(t.Leet)
	c.Prefixes = slices.Clone(t.Prefixes)
	c.Suffixes = slices.Clone(t.Suffixes)
	c.MilestoneOffsets = slices.Clone(t.MilestoneOffsets)
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
