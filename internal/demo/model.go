package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/inkless/ansi"
	"github.com/iw2rmb/inkless/config"
	"github.com/iw2rmb/inkless/grapheme"
	"github.com/iw2rmb/inkless/render"
	"github.com/iw2rmb/inkless/text"
)

// Config configures a Model.
type Config struct {
	Profile config.Profile
	// Caps overrides the profile's terminal section when non-nil.
	Caps *ansi.Capabilities
	// Text replaces DefaultText.
	Text string
	Keys *KeyMap
}

// Model is a Bubble Tea program showing one text under every overflow mode.
// The content is re-rendered on every resize and setting change.
type Model struct {
	viewport viewport.Model
	keys     KeyMap

	opts     render.Options
	caps     ansi.Capabilities
	overflow text.Overflow
	styles   map[string]ansi.Style
	text     string

	// focus is an index into modes, or -1 to show them all.
	focus    int
	clean    bool
	showHelp bool
}

// New validates the profile and builds the model.
func New(cfg Config) (Model, error) {
	opts, err := cfg.Profile.Options()
	if err != nil {
		return Model{}, err
	}
	caps, err := cfg.Profile.Capabilities()
	if err != nil {
		return Model{}, err
	}
	if cfg.Caps != nil {
		caps = *cfg.Caps
	}
	o, err := cfg.Profile.OverflowPolicy()
	if err != nil {
		return Model{}, err
	}
	styles, err := cfg.Profile.StyleMap()
	if err != nil {
		return Model{}, err
	}
	m := Model{
		viewport: viewport.New(0, 0),
		keys:     DefaultKeyMap(),
		opts:     opts,
		caps:     caps,
		overflow: o,
		styles:   styles,
		text:     cfg.Text,
		focus:    -1,
	}
	if cfg.Keys != nil {
		m.keys = *cfg.Keys
	}
	if m.text == "" {
		m.text = DefaultText
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// SetSize sizes the viewport below the status bar.
func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height-1, 0)
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.focus = (m.focus+2)%(len(modes)+1) - 1
			return m.changed(), nil
		case key.Matches(msg, m.keys.PrevMode):
			m.focus = (m.focus+len(modes)+1)%(len(modes)+1) - 1
			return m.changed(), nil
		case key.Matches(msg, m.keys.Position):
			m.overflow.Position = (m.overflow.Position + 1) % (text.Center + 1)
			return m.changed(), nil
		case key.Matches(msg, m.keys.Ambiguity):
			if m.opts.Policy == grapheme.Wide {
				m.opts.Policy = grapheme.Standard
			} else {
				m.opts.Policy = grapheme.Wide
			}
			return m.changed(), nil
		case key.Matches(msg, m.keys.Theme):
			m.clean = !m.clean
			return m.changed(), nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) changed() Model {
	m.rebuildContent()
	m.viewport.GotoTop()
	return m
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("62"))

var helpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(0, 1)

func (m Model) View() string {
	base := m.status() + "\n" + m.viewport.View()
	if !m.showHelp {
		return base
	}
	return overlay.Composite(m.helpView(), base, overlay.Center, overlay.Center, 0, 0)
}

// helpView lists every binding, keys aligned in one column.
func (m Model) helpView() string {
	bindings := m.keys.fullHelp()
	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
	}
	rows := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, fmt.Sprintf("%-*s  %s", keyWidth, h.Key, h.Desc))
	}
	rows = append(rows, fmt.Sprintf("%-*s  %s", keyWidth, "↑/↓", "scroll"))
	return helpStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) status() string {
	mode := "all"
	if m.focus >= 0 {
		mode = modes[m.focus].String()
	}
	parts := []string{fmt.Sprintf("mode %s | ellipsis %s | ambiguity %s | colors %s",
		mode, m.overflow.Position, m.opts.Policy, m.caps.Color)}
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	line := strings.Join(parts, " | ")
	if w := m.viewport.Width; w > 0 {
		return statusStyle.Width(w).Render(xansi.Truncate(line, w, "…"))
	}
	return statusStyle.Render(line)
}
