package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zguess/internal/strength"
	"github.com/zarlcorp/zguess/internal/wordlist"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	s, err := Load(zfilesystem.NewMemFS())
	if err != nil {
		t.Fatal(err)
	}
	if s != Default() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := zfilesystem.NewMemFS()

	want := Default()
	want.Leetspeak = false
	want.ExtendedYears = true
	want.MaxWords = 1234
	want.Scorer = ScorerEntropy
	want.BreachList = "/tmp/rockyou.txt"
	want.OutputDir = "lists"

	if err := Save(fs, want); err != nil {
		t.Fatal(err)
	}

	got, err := Load(fs)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	if err := fs.WriteFile(FileName, []byte(`{"affixes": false}`), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(fs)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Affixes = false
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad json", `{not json`, false},
		{"unknown scorer", `{"scorer": "magic"}`, true},
		{"negative max", `{"max_words": -5}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := zfilesystem.NewMemFS()
			if err := fs.WriteFile(FileName, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			s, err := Load(fs)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "load config:") {
				t.Errorf("error %q should be wrapped", err)
			}
			if errors.Is(err, ErrInvalid) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalid) = %v, want %v", !tt.invalid, tt.invalid)
			}
			if s != Default() {
				t.Errorf("failed load should return defaults, got %+v", s)
			}
		})
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := Default()
	s.Scorer = ""

	err := Save(zfilesystem.NewMemFS(), s)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestSaveIndented(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	if err := Save(fs, Default()); err != nil {
		t.Fatal(err)
	}

	data, err := fs.ReadFile(FileName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"leetspeak\": true") {
		t.Errorf("expected indented JSON, got:\n%s", data)
	}
	if strings.Contains(string(data), "breach_list") {
		t.Error("empty breach list should be omitted")
	}
}

func TestGeneratorConfig(t *testing.T) {
	if got, want := Default().GeneratorConfig(), wordlist.DefaultConfig(); got != want {
		t.Errorf("default config = %+v, want %+v", got, want)
	}

	s := Default()
	s.YearAppend = false
	s.MaxWords = 10
	got := s.GeneratorConfig()
	if got.YearAppend || got.MaxWords != 10 || !got.Leetspeak {
		t.Errorf("config = %+v", got)
	}

	// an unset cap in the file falls back to the default
	s.MaxWords = 0
	if got := s.GeneratorConfig().MaxWords; got != wordlist.DefaultMaxWords {
		t.Errorf("unset max words = %d, want %d", got, wordlist.DefaultMaxWords)
	}
}

func TestTables(t *testing.T) {
	s := Default()
	if n := s.Tables().RecentYears; n != 0 {
		t.Errorf("default recent years = %d, want 0", n)
	}

	s.ExtendedYears = true
	ext := s.Tables()
	if ext.RecentYears == 0 || len(ext.MilestoneOffsets) == 0 {
		t.Errorf("extended tables missing years: %+v", ext)
	}
}

func TestAnalyzerOptions(t *testing.T) {
	tests := []struct {
		scorer string
		want   strength.Method
	}{
		{ScorerAuto, strength.MethodZxcvbn},
		{ScorerEntropy, strength.MethodEntropy},
	}

	for _, tt := range tests {
		t.Run(tt.scorer, func(t *testing.T) {
			s := Default()
			s.Scorer = tt.scorer
			a := strength.New(s.AnalyzerOptions()...)
			if a.Method() != tt.want {
				t.Errorf("method = %s, want %s", a.Method(), tt.want)
			}
		})
	}
}
