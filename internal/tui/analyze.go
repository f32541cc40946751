package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zguess/internal/strength"
)

// suggestLength is the length of passwords offered by ctrl+g.
const suggestLength = 20

// analyzeModel scores a password live as it is typed.
type analyzeModel struct {
	input    textinput.Model
	analyzer *strength.Analyzer
	result   strength.Result
	revealed bool
	flash    string
}

func newAnalyzeModel(a *strength.Analyzer) analyzeModel {
	ti := textinput.New()
	ti.Placeholder = "type a password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return analyzeModel{
		input:    ti,
		analyzer: a,
	}
}

func (m analyzeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m analyzeModel) Update(msg tea.Msg) (analyzeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlR:
			return m.toggleReveal(), nil
		case tea.KeyCtrlG:
			m.input.SetValue(zcrypto.GeneratePassword(suggestLength))
			m.input.CursorEnd()
			m = m.rescore()
			return m.setFlash("suggested a random password"), clearFlashAfter()
		case tea.KeyCtrlY:
			return m.copyInput()
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m = m.rescore()
	}
	return m, cmd
}

func (m analyzeModel) toggleReveal() analyzeModel {
	m.revealed = !m.revealed
	if m.revealed {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
	return m
}

func (m analyzeModel) copyInput() (analyzeModel, tea.Cmd) {
	val := m.input.Value()
	if val == "" {
		return m.setFlash("nothing to copy"), clearFlashAfter()
	}
	if err := writeClipboard(val); err != nil {
		return m.setFlash("copy: " + err.Error()), clearFlashAfter()
	}
	return m.setFlash("copied!"), clearFlashAfter()
}

func (m analyzeModel) rescore() analyzeModel {
	if m.input.Value() == "" {
		m.result = strength.Result{}
		return m
	}
	m.result = m.analyzer.Analyze(m.input.Value())
	return m
}

func (m analyzeModel) setFlash(msg string) analyzeModel {
	m.flash = msg
	return m
}

// scoreStyle colours a tier.
func scoreStyle(s strength.Score) lipgloss.Style {
	switch {
	case s <= strength.Weak:
		return zstyle.StatusErr
	case s == strength.Fair:
		return zstyle.StatusWarn
	default:
		return zstyle.StatusOK
	}
}

// scoreBar renders the tier as five cells.
func scoreBar(s strength.Score) string {
	filled := int(s) + 1
	return strings.Repeat("■", filled) + strings.Repeat("□", 5-filled)
}

func (m analyzeModel) View() string {
	s := fmt.Sprintf("\n  %s\n  %s\n\n", zstyle.Subtitle.Render("password"), m.input.View())

	if m.input.Value() == "" {
		s += "  " + zstyle.MutedText.Render("results appear as you type") + "\n"
	} else {
		r := m.result
		style := scoreStyle(r.Score)
		row := func(label, value string) {
			s += fmt.Sprintf("  %s %s\n", zstyle.MutedText.Render(fmt.Sprintf("%-11s", label)), value)
		}

		row("strength", style.Render(scoreBar(r.Score)+" "+r.Score.String()))
		row("entropy", fmt.Sprintf("%.1f bits", r.Entropy))
		row("crack time", r.CrackTime)
		row("method", string(r.Method))

		if len(r.Feedback) > 0 {
			s += "\n"
			for _, f := range r.Feedback {
				s += "  " + zstyle.Highlight.Render("- "+f) + "\n"
			}
		}
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
