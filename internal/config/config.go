// Package config persists zguess defaults as JSON in the data directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zguess/internal/strength"
	"github.com/zarlcorp/zguess/internal/wordlist"
)

// FileName is the settings file inside the data directory.
const FileName = "config.json"

// Scorer modes.
const (
	ScorerAuto    = "auto"
	ScorerEntropy = "entropy"
)

// ErrInvalid is returned by Validate for settings that cannot be used.
var ErrInvalid = errors.New("invalid settings")

// Settings holds generator and analyzer defaults.
type Settings struct {
	Leetspeak      bool `json:"leetspeak"`
	CaseVariations bool `json:"case_variations"`
	YearAppend     bool `json:"year_append"`
	Affixes        bool `json:"affixes"`
	SplitNames     bool `json:"split_names"`
	ExtendedYears  bool `json:"extended_years"`

	// MaxWords of zero means wordlist.DefaultMaxWords.
	MaxWords int `json:"max_words"`

	Scorer     string `json:"scorer"`
	BreachList string `json:"breach_list,omitempty"`
	OutputDir  string `json:"output_dir"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		Leetspeak:      true,
		CaseVariations: true,
		YearAppend:     true,
		Affixes:        true,
		SplitNames:     true,
		MaxWords:       wordlist.DefaultMaxWords,
		Scorer:         ScorerAuto,
		OutputDir:      ".",
	}
}

// Validate checks the scorer mode and word cap.
func (s Settings) Validate() error {
	switch s.Scorer {
	case ScorerAuto, ScorerEntropy:
	default:
		return fmt.Errorf("%w: unknown scorer %q", ErrInvalid, s.Scorer)
	}
	if s.MaxWords < 0 {
		return fmt.Errorf("%w: max words %d", ErrInvalid, s.MaxWords)
	}
	return nil
}

// Load reads settings from fsys. A missing file yields Default.
func Load(fsys zfilesystem.ReadWriteFileFS) (Settings, error) {
	s := Default()

	data, err := fsys.ReadFile(FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("load config: %w", err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("load config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("load config: %w", err)
	}

	return s, nil
}

// Save writes settings to fsys.
func Save(fsys zfilesystem.ReadWriteFileFS, s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if err := fsys.WriteFile(FileName, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// GeneratorConfig converts the transform defaults.
func (s Settings) GeneratorConfig() wordlist.Config {
	return wordlist.Config{
		Leetspeak:      s.Leetspeak,
		CaseVariations: s.CaseVariations,
		YearAppend:     s.YearAppend,
		Affixes:        s.Affixes,
		SplitNames:     s.SplitNames,
		MaxWords:       s.maxWords(),
	}
}

// maxWords treats an unset cap as the default.
func (s Settings) maxWords() int {
	if s.MaxWords <= 0 {
		return wordlist.DefaultMaxWords
	}
	return s.MaxWords
}

// Tables returns the generator tables, with the extended years when set.
func (s Settings) Tables() wordlist.Tables {
	if s.ExtendedYears {
		return wordlist.ExtendedTables()
	}
	return wordlist.DefaultTables()
}

// AnalyzerOptions returns the strength options implied by the scorer mode.
// The breach list path is read by the caller.
func (s Settings) AnalyzerOptions() []strength.Option {
	if s.Scorer == ScorerEntropy {
		return []strength.Option{strength.WithFallback()}
	}
	return nil
}
