package strength

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// character pool sizes per class
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 32

	// offline attack rate used for crack time estimates
	guessesPerSecond = 10_000
)

// tier thresholds in bits; a password scores the first tier whose bound
// it falls under
var tierBounds = [...]float64{28, 36, 60, 120}

// EntropyScorer estimates strength as length * log2(pool), where pool is
// the sum of the character classes present.
type EntropyScorer struct{}

// Score implements Scorer.
func (EntropyScorer) Score(password string) Result {
	bits := Entropy(password)
	return Result{
		Score:     TierFor(bits),
		Entropy:   bits,
		CrackTime: crackTime(bits),
		Feedback:  suggestions(password),
		Method:    MethodEntropy,
	}
}

type classes struct {
	lower, upper, digit, symbol bool
}

func classify(password string) classes {
	var c classes
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}
	return c
}

func (c classes) pool() int {
	n := 0
	if c.lower {
		n += lowerPool
	}
	if c.upper {
		n += upperPool
	}
	if c.digit {
		n += digitPool
	}
	if c.symbol {
		n += symbolPool
	}
	return n
}

// Entropy returns the character-class entropy of password in bits.
func Entropy(password string) float64 {
	pool := classify(password).pool()
	if pool == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
}

// TierFor maps an entropy value to its tier.
func TierFor(bits float64) Score {
	for i, bound := range tierBounds {
		if bits < bound {
			return Score(i)
		}
	}
	return VeryStrong
}

// crackTime estimates the average time to guess a password with the given
// entropy at guessesPerSecond.
func crackTime(bits float64) string {
	seconds := math.Pow(2, bits) / (2 * guessesPerSecond)
	return formatCrackTime(seconds)
}

func formatCrackTime(seconds float64) string {
	switch {
	case math.IsNaN(seconds):
		return "n/a"
	case seconds < 1:
		return "instant"
	case seconds < 60:
		return plural(seconds, "second")
	case seconds < 3600:
		return plural(seconds/60, "minute")
	case seconds < 86_400:
		return plural(seconds/3600, "hour")
	case seconds < 31_536_000:
		return plural(seconds/86_400, "day")
	case seconds < 3_153_600_000:
		return plural(seconds/31_536_000, "year")
	}
	return "centuries"
}

func plural(v float64, unit string) string {
	n := int(v)
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// sequences are checked as three-character windows
const (
	digitRun  = "01234567890"
	letterRun = "abcdefghijklmnopqrstuvwxyz"
)

// suggestions builds the feedback list for an entropy-scored password.
func suggestions(password string) []string {
	var out []string

	n := utf8.RuneCountInString(password)
	switch {
	case n < 8:
		out = append(out, "use at least 8 characters")
	case n < 12:
		out = append(out, "consider using 12 or more characters")
	}

	c := classify(password)
	if !c.lower {
		out = append(out, "add lowercase letters")
	}
	if !c.upper {
		out = append(out, "add uppercase letters")
	}
	if !c.digit {
		out = append(out, "add numbers")
	}
	if !c.symbol {
		out = append(out, "add symbols")
	}

	if hasRepeat(password, 3) {
		out = append(out, "avoid repeating characters")
	}
	if hasSequence(password, digitRun) {
		out = append(out, "avoid sequential numbers")
	}
	if hasSequence(strings.ToLower(password), letterRun) {
		out = append(out, "avoid sequential letters")
	}

	if len(out) == 0 {
		return []string{"strong password"}
	}
	return out
}

// hasRepeat reports whether any rune appears n times in a row.
func hasRepeat(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

// hasSequence reports whether s contains any three consecutive characters
// of run in ascending order.
func hasSequence(s, run string) bool {
	for i := 0; i+3 <= len(run); i++ {
		if strings.Contains(s, run[i:i+3]) {
			return true
		}
	}
	return false
}
