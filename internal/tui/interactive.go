package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geomech/erode/internal/gme"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateList state = iota
	stateDetail
	stateNotices
)

// model browses the derived equations of one engine run.
type model struct {
	engine *gme.Engine

	state    state
	names    []string
	filtered []string
	cursor   int
	offset   int
	selected string

	filtering bool
	filter    string

	width  int
	height int
}

func newBrowser(engine *gme.Engine) model {
	names := engine.Names()
	return model{
		engine:   engine,
		names:    names,
		filtered: names,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateList:
		return m.listKey(msg)
	case stateDetail:
		return m.detailKey(msg)
	case stateNotices:
		return m.noticesKey(msg)
	}
	return m, nil
}

func (m model) listKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.refilter()
			}
		default:
			s := msg.String()
			if len(s) == 1 {
				m.filter += s
				m.refilter()
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.filtered) - 1
	case "/":
		m.filtering = true
		m.filter = ""
		m.refilter()
	case "n":
		m.state = stateNotices
	case "enter", " ":
		if len(m.filtered) > 0 {
			m.selected = m.filtered[m.cursor]
			m.state = stateDetail
		}
	}
	m.clampScroll()
	return m, nil
}

func (m model) detailKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.state = stateList
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.selected = m.filtered[m.cursor]
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.selected = m.filtered[m.cursor]
		}
	}
	m.clampScroll()
	return m, nil
}

func (m model) noticesKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		m.state = stateList
	}
	return m, nil
}

func (m *model) refilter() {
	if m.filter == "" {
		m.filtered = m.names
	} else {
		m.filtered = nil
		for _, name := range m.names {
			if strings.Contains(name, m.filter) {
				m.filtered = append(m.filtered, name)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	m.offset = 0
}

func (m *model) clampScroll() {
	visible := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m model) listHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) View() string {
	switch m.state {
	case stateList:
		return m.viewList()
	case stateDetail:
		return m.viewDetail()
	case stateNotices:
		return m.viewNotices()
	}
	return ""
}

func (m model) header() string {
	cfg := m.engine.Config()
	line := fmt.Sprintf("eta=%s  mu=%s  tilt=%s  flow=%s  profile=%s",
		cfg.Eta.RatString(), cfg.Mu.RatString(), cfg.Tilt, cfg.Flow, cfg.Profile)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("   " + cyan.Render("e r o d e") + "  " + dim.Render("derived equations") + "\n")
	b.WriteString("   " + dimmer.Render(line) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 48)) + "\n")
	return b.String()
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString(m.header())

	if m.filtering || m.filter != "" {
		b.WriteString("   " + dim.Render("/") + white.Render(m.filter))
		if m.filtering {
			b.WriteString(white.Render("▋"))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	visible := m.listHeight()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := m.offset; i < end; i++ {
		name := m.filtered[i]
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(name) + "\n")
		} else {
			b.WriteString("     " + dim.Render(name) + "\n")
		}
	}
	if len(m.filtered) == 0 {
		b.WriteString("     " + dimmer.Render("no matches") + "\n")
	}

	count := fmt.Sprintf("%d/%d", len(m.filtered), len(m.names))
	notices := ""
	if n := len(m.engine.Notices()); n > 0 {
		notices = yellow.Render(fmt.Sprintf("  %d notice(s)", n))
	}
	b.WriteString("\n   " + dim.Render(count) + notices + "\n")
	b.WriteString(dim.Render("   ↑↓ select  enter view  / filter  n notices  q quit") + "\n")
	return b.String()
}

func (m model) viewDetail() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n   " + magenta.Render(m.selected) + "\n\n")

	v, ok := m.engine.ByName(m.selected)
	if !ok {
		b.WriteString("   " + dimmer.Render("unavailable") + "\n")
	} else {
		for _, line := range wrap(v.String(), m.width-6) {
			b.WriteString("   " + white.Render(line) + "\n")
		}
		if lx, ok := v.(interface{ LaTeX() string }); ok {
			b.WriteString("\n")
			for _, line := range wrap(lx.LaTeX(), m.width-6) {
				b.WriteString("   " + dim.Render(line) + "\n")
			}
		}
	}

	b.WriteString("\n" + dim.Render("   ↑↓ next/prev  esc back  q quit") + "\n")
	return b.String()
}

func (m model) viewNotices() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	notices := m.engine.Notices()
	if len(notices) == 0 {
		b.WriteString("   " + green.Render("every stage derived cleanly") + "\n")
	}
	for _, n := range notices {
		b.WriteString("   " + yellow.Render(n.Stage) + "  " + dim.Render(n.Reason) + "\n")
	}

	b.WriteString("\n" + dim.Render("   any key back  q quit") + "\n")
	return b.String()
}

// wrap splits s into lines of at most w runes, breaking at spaces where
// possible.
func wrap(s string, w int) []string {
	if w < 16 {
		w = 16
	}
	var lines []string
	for len(s) > w {
		cut := strings.LastIndex(s[:w], " ")
		if cut < w/2 {
			cut = w
		}
		lines = append(lines, strings.TrimRight(s[:cut], " "))
		s = strings.TrimLeft(s[cut:], " ")
	}
	if s != "" {
		lines = append(lines, s)
	}
	return lines
}

// RunBrowser opens the equation browser for a completed derivation.
func RunBrowser(engine *gme.Engine) error {
	p := tea.NewProgram(newBrowser(engine), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
