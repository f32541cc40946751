package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zarlcorp/zguess/internal/config"
	"github.com/zarlcorp/zguess/internal/persona"
	"github.com/zarlcorp/zguess/internal/wordlist"
)

// ErrNoFacts is returned when generate has nothing to seed from.
var ErrNoFacts = errors.New("no facts given; use --name, --birthdate, --pet, --team, --word or --sample")

type generateOptions struct {
	Names      []string `long:"name" description:"full name (repeatable)" value-name:"NAME"`
	Birthdates []string `long:"birthdate" description:"date of birth in any common format (repeatable)" value-name:"DATE"`
	Pets       []string `long:"pet" description:"pet names, comma-separated or repeated" value-name:"NAMES"`
	Teams      []string `long:"team" description:"sports teams, comma-separated or repeated" value-name:"TEAMS"`
	Words      []string `long:"word" description:"custom seed words, comma-separated or repeated" value-name:"WORDS"`

	NoLeet        bool `long:"no-leet" description:"skip leetspeak substitution"`
	NoCase        bool `long:"no-case" description:"skip case variations"`
	NoYears       bool `long:"no-years" description:"skip year suffixes"`
	NoAffixes     bool `long:"no-affixes" description:"skip common prefixes and suffixes"`
	NoSplit       bool `long:"no-split" description:"do not seed each part of a full name"`
	ExtendedYears bool `long:"extended-years" description:"also append recent and milestone years"`

	Max    int    `long:"max" description:"maximum number of words (default from settings)" value-name:"N"`
	Out    string `short:"o" long:"out" description:"write the wordlist to FILE instead of stdout" value-name:"FILE"`
	Stats  bool   `long:"stats" description:"print length statistics to stderr"`
	Sample bool   `long:"sample" description:"add a random sample persona"`
	JSON   bool   `long:"json" description:"print words and stats as JSON"`
}

// facts collects the fact flags.
func (o generateOptions) facts() wordlist.Facts {
	f := wordlist.NewFacts()
	for _, n := range o.Names {
		f.Add(wordlist.CategoryName, n)
	}
	for _, d := range o.Birthdates {
		f.Add(wordlist.CategoryBirthdate, d)
	}
	f.Add(wordlist.CategoryPet, splitAll(o.Pets)...)
	f.Add(wordlist.CategoryTeam, splitAll(o.Teams)...)
	return f
}

// apply layers the flags over the settings defaults.
func (o generateOptions) apply(s config.Settings) config.Settings {
	s.Leetspeak = s.Leetspeak && !o.NoLeet
	s.CaseVariations = s.CaseVariations && !o.NoCase
	s.YearAppend = s.YearAppend && !o.NoYears
	s.Affixes = s.Affixes && !o.NoAffixes
	s.SplitNames = s.SplitNames && !o.NoSplit
	s.ExtendedYears = s.ExtendedYears || o.ExtendedYears
	if o.Max > 0 {
		s.MaxWords = o.Max
	}
	return s
}

type generateOutput struct {
	wordlist.Result
	Stats *wordlist.Stats `json:"stats,omitempty"`
}

// CmdGenerate builds a wordlist from fact flags and prints or saves it.
func CmdGenerate(args []string, s config.Settings, stdout, stderr io.Writer) error {
	var opts generateOptions
	rest, err := parse("generate", &opts, args, stdout)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("generate: unexpected arguments: %s", strings.Join(rest, " "))
	}
	if opts.Max < 0 {
		return fmt.Errorf("generate: --max must not be negative")
	}

	facts := opts.facts()
	if opts.Sample {
		sample := persona.New().Facts()
		for c, vs := range sample {
			facts.Add(c, vs...)
		}
		fmt.Fprintf(stderr, "sample: %s\n", describeFacts(sample))
	}

	custom := splitAll(opts.Words)
	if facts.Len() == 0 && len(custom) == 0 {
		return fmt.Errorf("generate: %w", ErrNoFacts)
	}

	s = opts.apply(s)
	res := wordlist.New(s.Tables()).Generate(facts, custom, s.GeneratorConfig())

	if res.Truncated {
		fmt.Fprintf(stderr, "truncated at %d words\n", len(res.Words))
	}

	if opts.Out != "" {
		fsys, name, err := outputFS(opts.Out)
		if err != nil {
			return err
		}
		if err := wordlist.Save(fsys, name, res.Words); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "saved %d words to %s\n", len(res.Words), opts.Out)
	}

	// --json replaces the plain report on stdout, with or without --out
	if opts.JSON {
		out := generateOutput{Result: res}
		if opts.Stats {
			st := res.Stats()
			out.Stats = &st
		}
		return printJSON(stdout, out)
	}

	if opts.Out == "" {
		if err := wordlist.Write(stdout, res.Words); err != nil {
			return err
		}
	}

	if opts.Stats {
		printStats(stderr, res.Stats())
	}

	return nil
}

func printStats(w io.Writer, st wordlist.Stats) {
	fmt.Fprintf(w, "  words:   %d (from %d seeds)\n", st.Total, st.Seeds)
	fmt.Fprintf(w, "  length:  %d-%d, average %.1f\n", st.MinLen, st.MaxLen, st.AvgLen)
}

// describeFacts renders facts as "name=..., pet=..." in category order.
func describeFacts(f wordlist.Facts) string {
	var parts []string
	for _, c := range wordlist.Categories() {
		for _, v := range f[c] {
			parts = append(parts, string(c)+"="+v)
		}
	}
	return strings.Join(parts, ", ")
}
