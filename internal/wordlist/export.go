package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path"
	"unicode/utf8"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

// Write emits words one per line as UTF-8 with no header, the format
// cracking tools read.
func Write(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return fmt.Errorf("write wordlist: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write wordlist: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write wordlist: %w", err)
	}
	return nil
}

// Save writes words to name on fsys, creating parent directories.
func Save(fsys zfilesystem.ReadWriteFileFS, name string, words []string) error {
	var buf bytes.Buffer
	if err := Write(&buf, words); err != nil {
		return fmt.Errorf("save wordlist: %w", err)
	}

	if dir := path.Dir(name); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save wordlist: create %s: %w", dir, err)
		}
	}

	if err := fsys.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save wordlist: write %s: %w", name, err)
	}

	return nil
}

// Stats summarises a wordlist. Lengths count runes.
type Stats struct {
	Total  int     `json:"total"`
	Seeds  int     `json:"seeds"`
	MinLen int     `json:"min_length"`
	MaxLen int     `json:"max_length"`
	AvgLen float64 `json:"average_length"`
}

// Stats computes length statistics for r.
func (r Result) Stats() Stats {
	s := Stats{Total: len(r.Words), Seeds: r.Seeds}
	if len(r.Words) == 0 {
		return s
	}

	sum := 0
	s.MinLen = utf8.RuneCountInString(r.Words[0])
	for _, w := range r.Words {
		n := utf8.RuneCountInString(w)
		sum += n
		s.MinLen = min(s.MinLen, n)
		s.MaxLen = max(s.MaxLen, n)
	}
	s.AvgLen = float64(sum) / float64(len(r.Words))
	return s
}
