package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/sidenav"
)

const sidebarWidth = 26

var (
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			PaddingRight(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true)
	linkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeLinkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#008080")).Bold(true)
	headingStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// activeChangedMsg is sent from the router's subscription, which may run on
// a timer goroutine.
type activeChangedMsg struct{}

type model struct {
	doc     *document
	page    *page.Page
	router  *scrollrouter.Router
	nav     *sidenav.Progress
	history *history.Memory

	width  int
	height int
	status string
	err    error
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.page.Resize(float64(m.contentHeight()))
		m.router.Reflow()
	case activeChangedMsg:
		m.err = nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	viewport := float64(m.contentHeight())

	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "j", "down":
		m.page.ScrollBy(1)
	case "k", "up":
		m.page.ScrollBy(-1)
	case " ", "pgdown", "f":
		m.page.ScrollBy(viewport)
	case "b", "pgup":
		m.page.ScrollBy(-viewport)
	case "g", "home":
		m.page.SetScrollY(0)
	case "G", "end":
		m.page.SetScrollY(m.page.MaxScroll())
	case "h", "backspace":
		m.back()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.err = m.nav.Click(int(key[0] - '1'))
		}
	}
	return nil
}

// back steps the address bar back one entry and shows that section without
// creating a new entry.
func (m *model) back() {
	if !m.history.Back() {
		m.status = "no earlier entry"
		return
	}
	route := m.history.Location().Path
	h, ok := m.router.Lookup(route)
	if !ok {
		m.err = scrollrouter.NewRouteError("back", route, scrollrouter.ErrUnknownRoute)
		return
	}
	m.router.SetNavClicked(true)
	m.page.ScrollTo(h, 0)
	m.status = "back to " + route
}

func (m *model) contentHeight() int {
	return max(m.height-2, 1)
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}

	height := m.contentHeight()
	sidebar := sidebarStyle.Height(height).Render(m.renderSidebar())

	contentWidth := max(m.width-sidebarWidth-2, 10)
	top := int(m.page.ScrollY())
	rows := make([]string, 0, height)
	for i := top; i < top+height && i < len(m.doc.lines); i++ {
		line := m.doc.lines[i]
		if strings.HasPrefix(line, "## ") {
			line = headingStyle.Render(strings.TrimPrefix(line, "## "))
		}
		rows = append(rows, lipgloss.NewStyle().MaxWidth(contentWidth).Render(line))
	}
	content := lipgloss.NewStyle().PaddingLeft(1).Height(height).Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content),
		m.renderStatus(),
	)
}

func (m *model) renderSidebar() string {
	var b strings.Builder
	for _, item := range m.nav.Items() {
		text := fmt.Sprintf("%d %s", item.Index+1, item.Text)
		if item.Active {
			b.WriteString(activeLinkStyle.Render("> " + text))
		} else {
			b.WriteString(linkStyle.Render("  " + text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}

	label, err := m.nav.Label()
	if err != nil {
		label = err.Error()
	}
	dir := "up"
	if m.router.IsScrollingDown() {
		dir = "down"
	}
	line := fmt.Sprintf("%s  |  %s  |  %s  |  %d entries",
		label, m.history.Location(), dir, m.history.Len())
	if m.status != "" {
		line += "  |  " + m.status
	}
	return statusStyle.Render(line)
}
