package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Generator expands personal facts into candidate passwords.
type Generator struct {
	tables Tables
}

// New creates a generator using a private copy of t.
func New(t Tables) *Generator {
	return &Generator{tables: t.clone()}
}

// Result is a generated wordlist.
type Result struct {
	// Words are unique and in generation order.
	Words []string `json:"words"`

	// Seeds counts the unique seed words before any transform.
	Seeds int `json:"seeds"`

	// Truncated is set when more unique words existed than the cap allowed.
	Truncated bool `json:"truncated"`
}

// Generate seeds the list from facts and custom words, then applies the
// enabled transforms in order: case variations, leetspeak, years, affixes.
// Each transform reads the words produced so far. Output is deduplicated
// in first-seen order and capped at cfg.MaxWords.
func (g *Generator) Generate(facts Facts, custom []string, cfg Config) Result {
	set := newOrderedSet(cfg.limit())

	seeds := seedWords(facts, custom, cfg.SplitNames)
	for _, w := range seeds {
		set.add(w)
	}

	if cfg.CaseVariations {
		for _, w := range seeds {
			if set.overflow {
				break
			}
			for _, v := range caseVariants(w) {
				set.add(v)
			}
		}
	}

	if cfg.Leetspeak {
		set.each(func(w string) {
			set.add(g.leet(w))
		})
	}

	if cfg.YearAppend {
		years := yearSuffixes(g.candidateYears(facts))
		set.each(func(w string) {
			for _, y := range years {
				set.add(w + y)
			}
		})
	}

	if cfg.Affixes {
		set.each(func(w string) {
			for _, p := range g.tables.Prefixes {
				set.add(p + w)
			}
			for _, s := range g.tables.Suffixes {
				set.add(w + s)
			}
		})
	}

	return Result{
		Words:     set.words,
		Seeds:     len(seeds),
		Truncated: set.overflow,
	}
}

// seedWords collects trimmed, non-empty fact values in category order,
// then custom words, without duplicates.
func seedWords(facts Facts, custom []string, splitNames bool) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, c := range facts.orderedCategories() {
		for _, v := range facts[c] {
			add(v)
			if splitNames && c == CategoryName {
				for _, part := range nameParts(v) {
					add(part)
				}
			}
		}
	}

	for _, w := range custom {
		add(w)
	}

	return out
}

// nameParts returns the words of a multi-word name longer than two runes.
func nameParts(name string) []string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return nil
	}
	var out []string
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

// caseVariants returns lowercase, uppercase, title and alternating case.
func caseVariants(w string) []string {
	lower := strings.ToLower(w)
	return []string{
		lower,
		strings.ToUpper(w),
		titleCase(lower),
		alternatingCase(lower),
	}
}

// titleCase uppercases the first rune of an already-lowercased word.
func titleCase(lower string) string {
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return string(unicode.ToUpper(r)) + lower[size:]
}

// alternatingCase uppercases runes at even positions.
func alternatingCase(lower string) string {
	var b strings.Builder
	b.Grow(len(lower))
	i := 0
	for _, r := range lower {
		if i%2 == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// leet substitutes every table rune in w, matching case-insensitively.
func (g *Generator) leet(w string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := g.tables.Leet[unicode.ToLower(r)]; ok {
			return sub
		}
		return r
	}, w)
}

// orderedSet keeps first-seen order and stops accepting words at limit.
type orderedSet struct {
	words    []string
	seen     map[string]struct{}
	limit    int
	overflow bool
}

func newOrderedSet(limit int) *orderedSet {
	return &orderedSet{
		seen:  make(map[string]struct{}),
		limit: limit,
	}
}

func (s *orderedSet) add(w string) {
	if _, ok := s.seen[w]; ok {
		return
	}
	if len(s.words) >= s.limit {
		s.overflow = true
		return
	}
	s.seen[w] = struct{}{}
	s.words = append(s.words, w)
}

// each calls fn for every word present when each starts. Words added by
// fn are not visited. It stops early once the set has overflowed, since
// nothing further can be kept.
func (s *orderedSet) each(fn func(string)) {
	n := len(s.words)
	for i := 0; i < n; i++ {
		if s.overflow {
			return
		}
		fn(s.words[i])
	}
}
