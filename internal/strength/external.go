package strength

import (
	"math"

	"github.com/nbutton23/zxcvbn-go"
)

// ExternalScorer delegates scoring to zxcvbn. Hint words such as the
// owner's name or birth year are penalised when the password uses them.
type ExternalScorer struct {
	hints []string
}

// NewExternalScorer creates a zxcvbn-backed scorer.
func NewExternalScorer(hints ...string) *ExternalScorer {
	return &ExternalScorer{hints: append([]string(nil), hints...)}
}

// Score implements Scorer.
func (s *ExternalScorer) Score(password string) Result {
	m := zxcvbn.PasswordStrength(password, s.hints)

	score := Score(m.Score)
	switch {
	case score < VeryWeak:
		score = VeryWeak
	case score > VeryStrong:
		score = VeryStrong
	}

	bits := m.Entropy
	if bits < 0 || math.IsNaN(bits) {
		bits = 0
	}

	return Result{
		Score:     score,
		Entropy:   bits,
		CrackTime: formatCrackTime(m.CrackTime),
		Feedback:  suggestions(password),
		Method:    MethodZxcvbn,
	}
}
