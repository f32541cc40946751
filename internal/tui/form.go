package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zguess/internal/config"
	"github.com/zarlcorp/zguess/internal/persona"
	"github.com/zarlcorp/zguess/internal/wordlist"
)

// text fields come first, then toggles
const (
	fieldName = iota
	fieldBirthdate
	fieldPet
	fieldTeam
	fieldWords
	fieldMax
	textFieldCount
)

const (
	fieldLeet = textFieldCount + iota
	fieldCase
	fieldYears
	fieldAffixes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"name",
	"birthdate",
	"pets",
	"teams",
	"custom words",
	"max words",
	"leetspeak",
	"case variants",
	"years",
	"affixes",
}

// formModel collects personal facts and transform choices.
type formModel struct {
	inputs   [textFieldCount]textinput.Model
	toggles  [fieldCount - textFieldCount]bool
	focus    int
	settings config.Settings
	flash    string
}

func newFormModel(s config.Settings) formModel {
	var inputs [textFieldCount]textinput.Model
	for i := range textFieldCount {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldBirthdate].Placeholder = "1990-05-01"
	inputs[fieldPet].Placeholder = "comma separated"
	inputs[fieldTeam].Placeholder = "comma separated"
	inputs[fieldWords].Placeholder = "comma separated"
	inputs[fieldMax].Placeholder = strconv.Itoa(effectiveMax(s.MaxWords))
	inputs[fieldMax].CharLimit = 9

	m := formModel{inputs: inputs, settings: s}
	m.toggles[fieldLeet-textFieldCount] = s.Leetspeak
	m.toggles[fieldCase-textFieldCount] = s.CaseVariations
	m.toggles[fieldYears-textFieldCount] = s.YearAppend
	m.toggles[fieldAffixes-textFieldCount] = s.Affixes

	m.inputs[m.focus].Focus()
	return m
}

func effectiveMax(n int) int {
	if n <= 0 {
		return wordlist.DefaultMaxWords
	}
	return n
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlR:
		return m.fillSample(), clearFlashAfter()
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "tab":
		return m.moveFocus(1), textinput.Blink
	case "shift+tab":
		return m.moveFocus(-1), textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	if m.focus >= textFieldCount {
		if msg.String() == " " {
			i := m.focus - textFieldCount
			m.toggles[i] = !m.toggles[i]
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) moveFocus(delta int) formModel {
	if m.focus < textFieldCount {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	if m.focus < textFieldCount {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	if m.focus >= textFieldCount {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// fillSample replaces the fact fields with a random persona.
func (m formModel) fillSample() formModel {
	f := persona.New().Facts()
	m.inputs[fieldName].SetValue(strings.Join(f[wordlist.CategoryName], ", "))
	m.inputs[fieldBirthdate].SetValue(strings.Join(f[wordlist.CategoryBirthdate], ", "))
	m.inputs[fieldPet].SetValue(strings.Join(f[wordlist.CategoryPet], ", "))
	m.inputs[fieldTeam].SetValue(strings.Join(f[wordlist.CategoryTeam], ", "))
	m.flash = "filled sample facts"
	return m
}

// facts reads the fact fields. Every field accepts a comma-separated list.
func (m formModel) facts() wordlist.Facts {
	f := wordlist.NewFacts()
	f.Add(wordlist.CategoryName, wordlist.SplitList(m.inputs[fieldName].Value())...)
	f.Add(wordlist.CategoryBirthdate, wordlist.SplitList(m.inputs[fieldBirthdate].Value())...)
	f.Add(wordlist.CategoryPet, wordlist.SplitList(m.inputs[fieldPet].Value())...)
	f.Add(wordlist.CategoryTeam, wordlist.SplitList(m.inputs[fieldTeam].Value())...)
	return f
}

func (m formModel) config() (wordlist.Config, error) {
	cfg := m.settings.GeneratorConfig()
	cfg.Leetspeak = m.toggles[fieldLeet-textFieldCount]
	cfg.CaseVariations = m.toggles[fieldCase-textFieldCount]
	cfg.YearAppend = m.toggles[fieldYears-textFieldCount]
	cfg.Affixes = m.toggles[fieldAffixes-textFieldCount]

	if raw := strings.TrimSpace(m.inputs[fieldMax].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("max words must be a positive number")
		}
		cfg.MaxWords = n
	}
	return cfg, nil
}

func (m formModel) submit() (formModel, tea.Cmd) {
	facts := m.facts()
	custom := wordlist.SplitList(m.inputs[fieldWords].Value())
	if facts.Len() == 0 && len(custom) == 0 {
		m.flash = "enter at least one fact"
		return m, clearFlashAfter()
	}

	cfg, err := m.config()
	if err != nil {
		m.flash = err.Error()
		return m, clearFlashAfter()
	}

	return m, func() tea.Msg {
		return generateMsg{facts: facts, custom: custom, cfg: cfg}
	}
}

func (m formModel) View() string {
	s := "\n"

	for i := range fieldCount {
		if i == textFieldCount {
			s += "\n"
		}

		label := zstyle.MutedText.Render(fmt.Sprintf("  %-13s", fieldLabels[i]))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}

		var fieldView string
		if i < textFieldCount {
			fieldView = m.inputs[i].View()
		} else {
			fieldView = checkbox(m.toggles[i-textFieldCount])
		}

		s += fmt.Sprintf("  %s%s %s\n", cursor, label, fieldView)
	}

	s += "\n"

	if m.flash != "" {
		s += "  " + zstyle.StatusWarn.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func checkbox(on bool) string {
	if on {
		return zstyle.StatusOK.Render("[x]")
	}
	return zstyle.MutedText.Render("[ ]")
}
