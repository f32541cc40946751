// Package tui implements the root Bubble Tea model for zguess.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zguess/internal/config"
	"github.com/zarlcorp/zguess/internal/strength"
	"github.com/zarlcorp/zguess/internal/wordlist"
)

type viewID int

const (
	viewMenu viewID = iota
	viewAnalyze
	viewForm
	viewResults
	viewSettings
)

// accent colours the header, menu cursor and logo. zguess takes sapphire
// from the shared palette, clear of the other tools' accents.
var accent = zstyle.Sapphire

// Model is the root TUI model.
type Model struct {
	version  string
	dataFS   zfilesystem.ReadWriteFileFS
	exportFS zfilesystem.ReadWriteFileFS
	settings config.Settings
	breach   []string
	analyzer *strength.Analyzer
	now      func() time.Time

	active       viewID
	menu         menuModel
	analyze      analyzeModel
	form         formModel
	results      resultsModel
	settingsView settingsModel

	// terminal dimensions
	width  int
	height int
}

// generateMsg asks the root to build a wordlist.
type generateMsg struct {
	facts  wordlist.Facts
	custom []string
	cfg    wordlist.Config
}

// saveWordlistMsg asks the root to export words.
type saveWordlistMsg struct {
	words []string
}

// settingsChangedMsg carries edited settings to persist.
type settingsChangedMsg struct {
	settings config.Settings
}

// New creates the root TUI model. Settings are persisted to dataFS and
// wordlists are saved under the configured output directory.
func New(version string, dataFS zfilesystem.ReadWriteFileFS, s config.Settings, breach []string) Model {
	m := Model{
		version:  version,
		dataFS:   dataFS,
		exportFS: zfilesystem.NewOSFileSystem(s.OutputDir),
		settings: s,
		breach:   breach,
		now:      time.Now,
		active:   viewMenu,
	}
	m.analyzer = m.buildAnalyzer()
	m.menu = newMenuModel(version, m.analyzer.Stats())
	return m
}

func (m Model) buildAnalyzer() *strength.Analyzer {
	opts := append(m.settings.AnalyzerOptions(), strength.WithBreachList(m.breach))
	return strength.New(opts...)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results = m.results.withHeight(msg.Height)
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case generateMsg:
		return m.handleGenerate(msg)

	case saveWordlistMsg:
		return m.handleSaveWordlist(msg.words)

	case settingsChangedMsg:
		return m.handleSettingsChanged(msg.settings)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// menu includes the logo, render directly
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewAnalyze:
		content = m.analyze.View()
	case viewForm:
		content = m.form.View()
	case viewResults:
		content = m.results.View()
	case viewSettings:
		content = m.settingsView.View()
	}

	header := zstyle.RenderHeader("zguess", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewAnalyze:
		return "Analyze Password"
	case viewForm:
		return "Generate Wordlist"
	case viewResults:
		return "Wordlist"
	case viewSettings:
		return "Settings"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewAnalyze:
		return []zstyle.HelpPair{
			{Key: "ctrl+r", Desc: "reveal"},
			{Key: "ctrl+g", Desc: "suggest"},
			{Key: "ctrl+y", Desc: "copy"},
			{Key: "esc", Desc: "back"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "space", Desc: "toggle"},
			{Key: "ctrl+r", Desc: "sample"},
			{Key: "enter", Desc: "generate"},
			{Key: "esc", Desc: "back"},
		}
	case viewResults:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy word"},
			{Key: "c", Desc: "copy all"},
			{Key: "s", Desc: "save"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewSettings:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "toggle"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewAnalyze:
		m.analyze, cmd = m.analyze.Update(msg)
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewResults:
		m.results, cmd = m.results.Update(msg)
	case viewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version, m.analyzer.Stats())
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewAnalyze:
		m.analyze = newAnalyzeModel(m.analyzer)
		m.active = viewAnalyze
		return m, tea.Batch(tea.ClearScreen, m.analyze.Init())

	case viewForm:
		// coming back from results keeps the form as it was
		if m.active != viewResults {
			m.form = newFormModel(m.settings)
		}
		m.active = viewForm
		return m, tea.Batch(tea.ClearScreen, m.form.Init())

	case viewSettings:
		m.settingsView = newSettingsModel(m.settings, m.analyzer.Method())
		m.active = viewSettings
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) handleGenerate(msg generateMsg) (tea.Model, tea.Cmd) {
	res := wordlist.New(m.settings.Tables()).Generate(msg.facts, msg.custom, msg.cfg)
	m.results = newResultsModel(res).withHeight(m.height)
	m.active = viewResults
	return m, tea.ClearScreen
}

func (m Model) handleSaveWordlist(words []string) (tea.Model, tea.Cmd) {
	name := "wordlist-" + m.now().Format("20060102-150405") + ".txt"
	if err := wordlist.Save(m.exportFS, name, words); err != nil {
		m.results = m.results.setFlash("save: " + err.Error())
		return m, clearFlashAfter()
	}

	path := filepath.Join(m.settings.OutputDir, name)
	m.results = m.results.setFlash(fmt.Sprintf("saved %d words to %s", len(words), path))
	return m, clearFlashAfter()
}

func (m Model) handleSettingsChanged(s config.Settings) (tea.Model, tea.Cmd) {
	if err := config.Save(m.dataFS, s); err != nil {
		m.settingsView.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	rescore := s.Scorer != m.settings.Scorer
	m.settings = s
	if rescore {
		m.analyzer = m.buildAnalyzer()
	}

	m.settingsView.settings = s
	m.settingsView.method = m.analyzer.Method()
	m.settingsView.flash = "saved"
	return m, clearFlashAfter()
}
