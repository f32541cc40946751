package cli

import (
	"errors"
	"fmt"
	"io"

	passwordvalidator "github.com/wagslane/go-password-validator"
	"github.com/zarlcorp/zguess/internal/config"
	"github.com/zarlcorp/zguess/internal/strength"
)

// ErrPolicy is returned when a password fails --min-entropy.
var ErrPolicy = errors.New("password does not meet policy")

type analyzeOptions struct {
	JSON       bool     `long:"json" description:"print the result as JSON"`
	MinEntropy float64  `long:"min-entropy" description:"fail unless the password reaches this many bits" value-name:"BITS"`
	Hints      []string `long:"hint" description:"personal word the password should not lean on (repeatable)" value-name:"WORD"`
	Entropy    bool     `long:"entropy" description:"score with the entropy model only"`
}

// CmdAnalyze scores one password, read from args or prompted for without
// echo.
func CmdAnalyze(args []string, s config.Settings, stdout, stderr io.Writer) error {
	var opts analyzeOptions
	rest, err := parse("analyze", &opts, args, stdout)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if len(rest) > 1 {
		return fmt.Errorf("analyze: expected at most one password, got %d", len(rest))
	}

	var password string
	if len(rest) == 1 {
		password = rest[0]
	} else {
		password, err = readPassword("password: ", stderr)
		if err != nil {
			return err
		}
	}

	if opts.Entropy {
		s.Scorer = config.ScorerEntropy
	}

	a, err := NewAnalyzer(s, strength.WithHints(splitAll(opts.Hints)...))
	if err != nil {
		return err
	}

	res := a.Analyze(password)

	if opts.JSON {
		if err := printJSON(stdout, res); err != nil {
			return err
		}
	} else {
		printResult(stdout, res)
	}

	if opts.MinEntropy > 0 {
		if err := passwordvalidator.Validate(password, opts.MinEntropy); err != nil {
			fmt.Fprintf(stderr, "policy: %v\n", err)
			return fmt.Errorf("%w: %.0f bits required", ErrPolicy, opts.MinEntropy)
		}
	}

	return nil
}

func printResult(w io.Writer, r strength.Result) {
	fmt.Fprintf(w, "  score:      %s\n", r.Score)
	fmt.Fprintf(w, "  entropy:    %.1f bits\n", r.Entropy)
	fmt.Fprintf(w, "  crack time: %s\n", r.CrackTime)
	fmt.Fprintf(w, "  method:     %s\n", r.Method)
	if len(r.Feedback) == 0 {
		return
	}
	fmt.Fprintln(w, "  feedback:")
	for _, f := range r.Feedback {
		fmt.Fprintf(w, "    - %s\n", f)
	}
}
