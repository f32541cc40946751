package tui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zguess/internal/config"
	"github.com/zarlcorp/zguess/internal/strength"
	"github.com/zarlcorp/zguess/internal/wordlist"
)

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
}

// stubClipboard records clipboard writes for the duration of a test.
func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var got []string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		got = append(got, s)
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })
	return &got
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// setupModel creates a root Model backed by in-memory filesystems.
func setupModel(t *testing.T, breach ...string) (Model, zfilesystem.ReadWriteFileFS, zfilesystem.ReadWriteFileFS) {
	t.Helper()
	var dataFS, exportFS zfilesystem.ReadWriteFileFS = zfilesystem.NewMemFS(), zfilesystem.NewMemFS()

	m := New("1.0", dataFS, config.Default(), breach)
	m.exportFS = exportFS
	m.now = func() time.Time { return fixedNow }
	return m, dataFS, exportFS
}

// processMsg sends a message through the model and returns the updated model.
func processMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	result, _ := m.Update(msg)
	return result.(Model)
}

// processCmd sends a message and feeds the message its command produces
// back into the model.
func processCmd(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	result, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return processMsg(t, result.(Model), cmd())
}

// menu view tests

func TestMenuViewShowsItems(t *testing.T) {
	m := newMenuModel("1.0", strength.Stats{Method: strength.MethodZxcvbn, BreachListSize: 77, Level: "enhanced"})
	view := m.View()

	for _, item := range menuItems {
		if !strings.Contains(view, item) {
			t.Errorf("menu should contain %q", item)
		}
	}
	if !strings.Contains(view, "1.0") {
		t.Error("menu should show version")
	}
	if !strings.Contains(view, "zxcvbn") || !strings.Contains(view, "77") {
		t.Error("menu should show analyzer status")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newMenuModel("1.0", strength.Stats{})

	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	m, _ = m.Update(keyMsg('k'))
	m, _ = m.Update(specialKey(tea.KeyUp))
	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.cursor)
	}

	for range menuItems {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(menuItems)-1)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		want   viewID
	}{
		{"analyze", int(menuAnalyze), viewAnalyze},
		{"generate", int(menuGenerate), viewForm},
		{"settings", int(menuSettings), viewSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMenuModel("1.0", strength.Stats{})
			m.cursor = tt.cursor
			_, cmd := m.Update(enterKey())
			if cmd == nil {
				t.Fatal("enter should produce command")
			}
			nav, ok := cmd().(navigateMsg)
			if !ok {
				t.Fatal("should emit navigateMsg")
			}
			if nav.view != tt.want {
				t.Errorf("view = %d, want %d", nav.view, tt.want)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	m := newMenuModel("1.0", strength.Stats{})
	if _, cmd := m.Update(keyMsg('q')); cmd == nil {
		t.Fatal("q should quit")
	}

	m.cursor = int(menuQuit)
	if _, cmd := m.Update(enterKey()); cmd == nil {
		t.Fatal("selecting Quit should produce command")
	}
}

// root model tests

func TestNewStartsAtMenu(t *testing.T) {
	m, _, _ := setupModel(t)
	if m.active != viewMenu {
		t.Errorf("active = %d, want menu", m.active)
	}
	if !strings.Contains(m.View(), "Analyze password") {
		t.Error("initial view should be the menu")
	}
}

func TestViewFrame(t *testing.T) {
	tests := []struct {
		view  viewID
		title string
	}{
		{viewAnalyze, "Analyze Password"},
		{viewForm, "Generate Wordlist"},
		{viewSettings, "Settings"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			m, _, _ := setupModel(t)
			m = processMsg(t, m, navigateMsg{view: tt.view})
			view := m.View()
			if !strings.Contains(view, "zguess") {
				t.Error("header should name the tool")
			}
			if !strings.Contains(view, tt.title) {
				t.Errorf("view should contain title %q", tt.title)
			}
		})
	}
}

func TestAnalyzeUsesBreachList(t *testing.T) {
	m, _, _ := setupModel(t, "Zq8!mountainGoat")
	m = processMsg(t, m, navigateMsg{view: viewAnalyze})

	for _, r := range "Zq8!mountainGoat" {
		m = processMsg(t, m, keyMsg(r))
	}

	if m.analyze.result.Method != strength.MethodBreach {
		t.Errorf("method = %s, want breach", m.analyze.result.Method)
	}
}

func TestGenerateSaveFlow(t *testing.T) {
	stubClipboard(t)
	m, _, exportFS := setupModel(t)
	m = processMsg(t, m, navigateMsg{view: viewForm})

	m.form.inputs[fieldName].SetValue("Alice")
	m.form.inputs[fieldBirthdate].SetValue("1990-05-01")
	m.form.inputs[fieldMax].SetValue("200")

	m = processCmd(t, m, enterKey())
	if m.active != viewResults {
		t.Fatalf("active = %d, want results", m.active)
	}
	words := m.results.result.Words
	if len(words) != 200 {
		t.Fatalf("got %d words, want 200", len(words))
	}
	if words[0] != "Alice" {
		t.Errorf("first word = %q, want Alice", words[0])
	}

	m = processCmd(t, m, keyMsg('s'))

	data, err := exportFS.ReadFile("wordlist-20260301-120000.txt")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 200 {
		t.Errorf("saved %d lines, want 200", len(lines))
	}
	if !strings.Contains(m.results.flash, "saved 200 words") {
		t.Errorf("flash = %q", m.results.flash)
	}
}

func TestResultsBackKeepsForm(t *testing.T) {
	m, _, _ := setupModel(t)
	m = processMsg(t, m, navigateMsg{view: viewForm})
	m.form.inputs[fieldPet].SetValue("rex")
	m = processCmd(t, m, enterKey())

	m = processCmd(t, m, escKey())
	if m.active != viewForm {
		t.Fatalf("active = %d, want form", m.active)
	}
	if got := m.form.inputs[fieldPet].Value(); got != "rex" {
		t.Errorf("pet = %q, form should keep its values", got)
	}

	// entering from the menu starts fresh
	m = processMsg(t, m, navigateMsg{view: viewMenu})
	m = processMsg(t, m, navigateMsg{view: viewForm})
	if got := m.form.inputs[fieldPet].Value(); got != "" {
		t.Errorf("pet = %q, want empty form", got)
	}
}

func TestGenerateUsesExtendedYears(t *testing.T) {
	m, _, _ := setupModel(t)
	m.settings.ExtendedYears = true

	m = processMsg(t, m, generateMsg{
		facts: wordlist.Facts{wordlist.CategoryBirthdate: {"1990"}},
		cfg:   config.Default().GeneratorConfig(),
	})

	if !slices.Contains(m.results.result.Words, "19902008") {
		t.Errorf("expected milestone year among %d words", len(m.results.result.Words))
	}
}

func TestSettingsPersistAndRescore(t *testing.T) {
	m, dataFS, _ := setupModel(t)
	if m.analyzer.Method() != strength.MethodZxcvbn {
		t.Fatalf("initial method = %s", m.analyzer.Method())
	}

	m = processMsg(t, m, navigateMsg{view: viewSettings})
	m.settingsView.cursor = int(settingsScorer)
	m = processCmd(t, m, enterKey())

	if m.settings.Scorer != config.ScorerEntropy {
		t.Errorf("scorer = %q, want entropy", m.settings.Scorer)
	}
	if m.analyzer.Method() != strength.MethodEntropy {
		t.Errorf("analyzer method = %s, want entropy", m.analyzer.Method())
	}
	if m.settingsView.flash != "saved" {
		t.Errorf("flash = %q, want saved", m.settingsView.flash)
	}

	saved, err := config.Load(dataFS)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Scorer != config.ScorerEntropy {
		t.Errorf("persisted scorer = %q", saved.Scorer)
	}

	// the form picks up the new defaults
	m.settingsView.cursor = int(settingsLeet)
	m = processCmd(t, m, enterKey())
	m = processMsg(t, m, navigateMsg{view: viewForm})
	if m.form.toggles[fieldLeet-textFieldCount] {
		t.Error("form should start with leetspeak off")
	}
}

func TestAccentIsOwn(t *testing.T) {
	for _, other := range []lipgloss.Color{zstyle.ZburnAccent, zstyle.ZvaultAccent, zstyle.ZshieldAccent} {
		if accent == other {
			t.Errorf("accent %s is already used by another tool", accent)
		}
	}
}

func TestWindowSizeSetsRows(t *testing.T) {
	m, _, _ := setupModel(t)
	m = processMsg(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.width != 80 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.results.rows != 28 {
		t.Errorf("rows = %d, want 28", m.results.rows)
	}
}
