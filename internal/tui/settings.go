package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zguess/internal/config"
	"github.com/zarlcorp/zguess/internal/strength"
)

type settingsChoice int

const (
	settingsLeet settingsChoice = iota
	settingsCase
	settingsYears
	settingsAffixes
	settingsSplit
	settingsExtended
	settingsScorer
	settingsBack
)

var settingsItems = []string{
	"leetspeak",
	"case variants",
	"years",
	"affixes",
	"split names",
	"extended years",
	"scorer",
	"back",
}

// settingsModel edits the persisted defaults.
type settingsModel struct {
	cursor   int
	settings config.Settings
	method   strength.Method
	flash    string
}

func newSettingsModel(s config.Settings, method strength.Method) settingsModel {
	return settingsModel{settings: s, method: method}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(settingsItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) || msg.String() == " " {
			return m, m.selectItem()
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

// selectItem toggles the item under the cursor and asks the root to
// persist the result.
func (m settingsModel) selectItem() tea.Cmd {
	s := m.settings

	switch settingsChoice(m.cursor) {
	case settingsLeet:
		s.Leetspeak = !s.Leetspeak
	case settingsCase:
		s.CaseVariations = !s.CaseVariations
	case settingsYears:
		s.YearAppend = !s.YearAppend
	case settingsAffixes:
		s.Affixes = !s.Affixes
	case settingsSplit:
		s.SplitNames = !s.SplitNames
	case settingsExtended:
		s.ExtendedYears = !s.ExtendedYears
	case settingsScorer:
		if s.Scorer == config.ScorerEntropy {
			s.Scorer = config.ScorerAuto
		} else {
			s.Scorer = config.ScorerEntropy
		}
	case settingsBack:
		return func() tea.Msg { return navigateMsg{view: viewMenu} }
	default:
		return nil
	}

	return func() tea.Msg { return settingsChangedMsg{settings: s} }
}

func (m settingsModel) valueFor(choice settingsChoice) string {
	on := func(b bool) string {
		if b {
			return zstyle.StatusOK.Render("on")
		}
		return zstyle.MutedText.Render("off")
	}

	s := m.settings
	switch choice {
	case settingsLeet:
		return on(s.Leetspeak)
	case settingsCase:
		return on(s.CaseVariations)
	case settingsYears:
		return on(s.YearAppend)
	case settingsAffixes:
		return on(s.Affixes)
	case settingsSplit:
		return on(s.SplitNames)
	case settingsExtended:
		return on(s.ExtendedYears)
	case settingsScorer:
		return zstyle.Highlight.Render(s.Scorer) + " " + zstyle.MutedText.Render(fmt.Sprintf("(using %s)", m.method))
	}
	return ""
}

func (m settingsModel) View() string {
	s := "\n"

	for i, item := range settingsItems {
		mi := zstyle.MenuItem{
			Label:  fmt.Sprintf("%-16s", item),
			Active: m.cursor == i,
		}
		line := zstyle.RenderMenuItem(mi, accent)
		if v := m.valueFor(settingsChoice(i)); v != "" {
			line += " " + v
		}
		s += line + "\n"
	}

	s += "\n  " + zstyle.MutedText.Render(fmt.Sprintf("max words %d  output dir %s", effectiveMax(m.settings.MaxWords), m.settings.OutputDir)) + "\n"

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
