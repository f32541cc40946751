// Package strength scores password strength.
//
// An Analyzer screens a password against known breached passwords and weak
// patterns, then hands it to a Scorer. The Scorer is chosen once when the
// Analyzer is built: zxcvbn when it passes a capability probe, otherwise a
// character-class entropy model.
package strength

import "fmt"

// Score is a five-tier strength classification.
type Score int

const (
	VeryWeak Score = iota
	Weak
	Fair
	Strong
	VeryStrong
)

var scoreNames = [...]string{
	VeryWeak:   "very weak",
	Weak:       "weak",
	Fair:       "fair",
	Strong:     "strong",
	VeryStrong: "very strong",
}

// Valid reports whether s is one of the five tiers.
func (s Score) Valid() bool {
	return s >= VeryWeak && s <= VeryStrong
}

func (s Score) String() string {
	if !s.Valid() {
		return fmt.Sprintf("score(%d)", int(s))
	}
	return scoreNames[s]
}

// MarshalText encodes the tier name so JSON output stays readable.
func (s Score) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("marshal score: %d out of range", int(s))
	}
	return []byte(scoreNames[s]), nil
}

// Method names the path that produced a Result.
type Method string

const (
	MethodNone    Method = "none"
	MethodBreach  Method = "breach"
	MethodPattern Method = "pattern"
	MethodZxcvbn  Method = "zxcvbn"
	MethodEntropy Method = "entropy"
	MethodCustom  Method = "custom"
)

// Result is the outcome of analysing one password.
type Result struct {
	Score     Score    `json:"score"`
	Entropy   float64  `json:"entropy_bits"`
	CrackTime string   `json:"crack_time"`
	Feedback  []string `json:"feedback"`
	Method    Method   `json:"method"`
}

// Scorer estimates the strength of a non-empty password.
type Scorer interface {
	Score(password string) Result
}
