// Package cli implements zguess's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zguess/internal/config"
	"github.com/zarlcorp/zguess/internal/strength"
	"github.com/zarlcorp/zguess/internal/wordlist"
	"golang.org/x/term"
)

// errHelp is returned by parse after help text has been printed.
var errHelp = errors.New("help requested")

// DataDir returns the default data directory for zguess.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zguess"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zguess"
	}
	return home + "/.local/share/zguess"
}

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// readPassword is swapped out in tests.
var readPassword = ReadPassword

// LoadSettings reads config.json from dir. A missing directory or file
// yields the defaults.
func LoadSettings(dir string) (config.Settings, error) {
	return config.Load(zfilesystem.NewOSFileSystem(dir))
}

// SaveSettings writes config.json to dir, creating it if needed.
func SaveSettings(dir string, s config.Settings) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return config.Save(zfilesystem.NewOSFileSystem(dir), s)
}

// LoadBreachFile reads an extra known-password list. An empty path
// returns nothing.
func LoadBreachFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open breach list: %w", err)
	}
	defer f.Close()

	return strength.LoadBreachList(f)
}

// NewAnalyzer builds an analyzer from settings, loading the configured
// breach list.
func NewAnalyzer(s config.Settings, opts ...strength.Option) (*strength.Analyzer, error) {
	words, err := LoadBreachFile(s.BreachList)
	if err != nil {
		return nil, err
	}

	all := append(s.AnalyzerOptions(), strength.WithBreachList(words))
	all = append(all, opts...)
	return strength.New(all...), nil
}

// parse reads flags into opts. Help output goes to w and yields errHelp.
func parse(name string, opts any, args []string, w io.Writer) ([]string, error) {
	p := flags.NewNamedParser("zguess "+name, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := p.AddGroup(name+" options", "", opts); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	rest, err := p.ParseArgs(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(w, fe.Message)
			return nil, errHelp
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rest, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// splitAll flattens repeated, comma-separated flag values.
func splitAll(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, wordlist.SplitList(v)...)
	}
	return out
}

// outputFS opens the directory holding file as a filesystem and returns
// the file's name within it.
func outputFS(file string) (zfilesystem.ReadWriteFileFS, string, error) {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create output dir: %w", err)
	}
	return zfilesystem.NewOSFileSystem(dir), filepath.Base(file), nil
}
