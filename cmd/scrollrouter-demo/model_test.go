package main

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
)

func newTestModel(t *testing.T, initialURL string) *model {
	t.Helper()

	doc, err := parseDocument(sampleDocument)
	require.NoError(t, err)
	cfg, err := loadConfig("")
	require.NoError(t, err)
	// Evaluate every movement immediately.
	cfg.Scroll.ThrottleMS = 0

	m, err := newModel(doc, cfg, initialURL, language.English, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(m.router.Close)
	t.Cleanup(m.nav.Close)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelSidebarClickPushesHistory(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(key("3"))
	require.Equal(t, "/transactions", m.history.Location().Path)
	require.Equal(t, 2, m.history.Len())
	require.Equal(t, "/transactions", m.nav.ActiveRoute())
	require.Contains(t, m.View(), "Transactions")

	m.Update(key("5"))
	require.Equal(t, 3, m.history.Len())

	m.Update(key("h"))
	require.Equal(t, "/transactions", m.history.Location().Path)
	require.Equal(t, float64(m.doc.sections[2].top), m.page.ScrollY())
}

func TestModelScrollReplacesHistory(t *testing.T) {
	m := newTestModel(t, "/")

	// Movements under the minimum delta are not recorded, so stop one row
	// past the heading where the last three-row step lands.
	for i := 0; i < m.doc.sections[1].top+1; i++ {
		m.Update(key("j"))
	}
	require.Equal(t, "/accounts", m.nav.ActiveRoute())
	require.Equal(t, "/accounts", m.history.Location().Path)
	require.Equal(t, 1, m.history.Len())
}

func TestModelDeepLink(t *testing.T) {
	m := newTestModel(t, "/budgets")

	require.Equal(t, "/budgets", m.nav.ActiveRoute())
	require.Equal(t, float64(m.doc.sections[4].top), m.page.ScrollY())
}

func TestModelUnknownClickShowsError(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(key("9"))
	require.Error(t, m.err)
	require.Contains(t, m.View(), "out of range")

	m.Update(activeChangedMsg{})
	require.NoError(t, m.err)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, "/")
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLoadConfigDefaultsToTerminalTuning(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, terminalScroll, cfg.Scroll)

	opts := scrollrouter.DefaultOptions()
	cfg.Apply(&opts)
	require.Equal(t, float64(1), opts.Threshold.Offset)
}
