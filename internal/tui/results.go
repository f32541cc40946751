package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zguess/internal/wordlist"
)

// rows shown when the terminal height is unknown
const defaultRows = 15

// resultsModel displays a generated wordlist in a scrollable list.
type resultsModel struct {
	result wordlist.Result
	stats  wordlist.Stats
	cursor int
	offset int
	rows   int
	flash  string
}

func newResultsModel(r wordlist.Result) resultsModel {
	return resultsModel{
		result: r,
		stats:  r.Stats(),
		rows:   defaultRows,
	}
}

// withHeight fits the list to a terminal of h lines, leaving room for
// the frame.
func (m resultsModel) withHeight(h int) resultsModel {
	m.rows = defaultRows
	if h > 0 {
		m.rows = max(h-12, 5)
	}
	return m.scroll()
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (resultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m resultsModel) handleKey(msg tea.KeyMsg) (resultsModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewForm} }
	}

	words := m.result.Words
	if len(words) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m.scroll(), nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(words)-1 {
			m.cursor++
		}
		return m.scroll(), nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if err := writeClipboard(words[m.cursor]); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied!"), clearFlashAfter()
	}

	switch msg.String() {
	case "c":
		if err := writeClipboard(strings.Join(words, "\n") + "\n"); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash(fmt.Sprintf("copied %d words", len(words))), clearFlashAfter()

	case "s":
		return m, func() tea.Msg { return saveWordlistMsg{words: words} }

	case "g":
		m.cursor = 0
		return m.scroll(), nil

	case "G":
		m.cursor = len(words) - 1
		return m.scroll(), nil
	}

	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m resultsModel) scroll() resultsModel {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.rows {
		m.offset = m.cursor - m.rows + 1
	}
	return m
}

func (m resultsModel) setFlash(msg string) resultsModel {
	m.flash = msg
	return m
}

func (m resultsModel) summary() string {
	st := m.stats
	if st.Total == 0 {
		return "no words"
	}
	return fmt.Sprintf("%d words from %d seeds  length %d-%d  avg %.1f",
		st.Total, st.Seeds, st.MinLen, st.MaxLen, st.AvgLen)
}

func (m resultsModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n  " + zstyle.Subtitle.Render(m.summary()) + "\n"
	if m.result.Truncated {
		s += "  " + zstyle.StatusWarn.Render(fmt.Sprintf("truncated at %d words", len(m.result.Words))) + "\n"
	}
	s += "\n"

	words := m.result.Words
	if len(words) == 0 {
		s += "  " + zstyle.MutedText.Render("nothing generated") + "\n"
	}

	end := min(m.offset+m.rows, len(words))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + words[i] + "\n"
		} else {
			s += "    " + words[i] + "\n"
		}
	}

	if len(words) > m.rows {
		pos := fmt.Sprintf("%d/%d", m.cursor+1, len(words))
		s += "  " + zstyle.MutedText.Render(pos) + "\n"
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
