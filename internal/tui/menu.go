package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zguess/internal/strength"
)

type menuChoice int

const (
	menuAnalyze menuChoice = iota
	menuGenerate
	menuSettings
	menuQuit
)

var menuItems = []string{
	"Analyze password",
	"Generate wordlist",
	"Settings",
	"Quit",
}

// menuModel is the main menu view.
type menuModel struct {
	cursor  int
	version string
	stats   strength.Stats
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func newMenuModel(version string, stats strength.Stats) menuModel {
	return menuModel{version: version, stats: stats}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuAnalyze:
		return func() tea.Msg { return navigateMsg{view: viewAnalyze} }
	case menuGenerate:
		return func() tea.Msg { return navigateMsg{view: viewForm} }
	case menuSettings:
		return func() tea.Msg { return navigateMsg{view: viewSettings} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accent)))
	title := zstyle.Title.Render("zguess")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n%s\n  %s %s\n\n", logo, title, ver)

	for i, item := range menuItems {
		mi := zstyle.MenuItem{Label: item, Active: m.cursor == i}
		s += zstyle.RenderMenuItem(mi, accent) + "\n"
	}

	status := fmt.Sprintf("scorer %s  breach list %d (%s)", m.stats.Method, m.stats.BreachListSize, m.stats.Level)
	s += "\n  " + zstyle.MutedText.Render(status) + "\n"
	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
