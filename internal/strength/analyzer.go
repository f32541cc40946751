package strength

import (
	"log/slog"
	"math"
)

// probePassword is scored once to check the external scorer works.
const probePassword = "Tr0ub4dor&3-probe"

// Analyzer classifies passwords. It is safe for concurrent use once built.
type Analyzer struct {
	scorer   Scorer
	fallback EntropyScorer
	method   Method
	breach   breachSet
	external bool
}

type options struct {
	scorer   Scorer
	fallback bool
	breach   []string
	hints    []string
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*options)

// WithScorer uses s instead of zxcvbn. It still has to pass the probe.
func WithScorer(s Scorer) Option {
	return func(o *options) { o.scorer = s }
}

// WithFallback forces the entropy model.
func WithFallback() Option {
	return func(o *options) { o.fallback = true }
}

// WithBreachList adds known passwords to the built-in list.
func WithBreachList(words []string) Option {
	return func(o *options) { o.breach = append(o.breach, words...) }
}

// WithHints passes personal words to the external scorer.
func WithHints(words ...string) Option {
	return func(o *options) { o.hints = append(o.hints, words...) }
}

// WithLogger sets the logger used to report scorer selection.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds an Analyzer, probing the preferred scorer and falling back to
// the entropy model when it is unusable.
func New(opts ...Option) *Analyzer {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	a := &Analyzer{
		breach: newBreachSet(embeddedBreachList(), o.breach),
	}

	if o.fallback {
		a.useFallback()
		o.logger.Debug("strength scorer selected", "method", a.method, "reason", "forced")
		return a
	}

	candidate, method := o.scorer, MethodCustom
	if candidate == nil {
		candidate, method = NewExternalScorer(o.hints...), MethodZxcvbn
	}

	if !probe(candidate) {
		a.useFallback()
		o.logger.Debug("strength scorer selected", "method", a.method, "reason", "probe failed")
		return a
	}

	a.scorer = candidate
	a.method = method
	a.external = true
	o.logger.Debug("strength scorer selected", "method", a.method)
	return a
}

func (a *Analyzer) useFallback() {
	a.scorer = a.fallback
	a.method = MethodEntropy
	a.external = false
}

// probe reports whether s returns a well-formed result without panicking.
func probe(s Scorer) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	r := s.Score(probePassword)
	return r.Score.Valid() && r.Entropy >= 0 && !math.IsNaN(r.Entropy)
}

// Method reports which scorer the Analyzer selected.
func (a *Analyzer) Method() Method {
	return a.method
}

// Analyze classifies password. It never fails; an empty password is the
// lowest tier.
func (a *Analyzer) Analyze(password string) Result {
	if password == "" {
		return Result{
			Score:     VeryWeak,
			CrackTime: "n/a",
			Feedback:  []string{"password cannot be blank"},
			Method:    MethodNone,
		}
	}

	if a.breach.contains(password) {
		return breachResult(password)
	}

	if msg, ok := matchWeakPattern(password); ok {
		return patternResult(msg)
	}

	return a.score(password)
}

// score runs the selected scorer, dropping to the entropy model if it
// panics on this input or returns something out of range.
func (a *Analyzer) score(password string) (r Result) {
	if !a.external {
		return a.fallback.Score(password)
	}

	defer func() {
		if recover() != nil {
			r = a.fallback.Score(password)
		}
	}()

	r = a.scorer.Score(password)
	if !r.Score.Valid() || r.Entropy < 0 || math.IsNaN(r.Entropy) {
		return a.fallback.Score(password)
	}
	return r
}

// Stats describes the Analyzer's configuration.
type Stats struct {
	BreachListSize    int    `json:"breach_list_size"`
	ExternalAvailable bool   `json:"external_available"`
	Method            Method `json:"method"`
	Level             string `json:"level"`
}

// Stats reports the breach list size and selected scorer.
func (a *Analyzer) Stats() Stats {
	level := "basic"
	if len(a.breach) > 0 {
		level = "enhanced"
	}
	return Stats{
		BreachListSize:    len(a.breach),
		ExternalAvailable: a.external,
		Method:            a.method,
		Level:             level,
	}
}
