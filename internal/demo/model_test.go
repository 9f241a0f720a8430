package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/inkless/ansi"
	"github.com/iw2rmb/inkless/config"
	"github.com/iw2rmb/inkless/grapheme"
	"github.com/iw2rmb/inkless/text"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := New(Config{
		Profile: config.Default(),
		Caps:    &ansi.Capabilities{},
		Text:    "The quick brown fox jumps over the lazy dog",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m.SetSize(30, 80)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_RendersEveryMode(t *testing.T) {
	m := newTestModel(t)
	got := xansi.Strip(m.renderContent())
	for _, want := range []string{"grapheme-wrap", "clip", "word-wrap", "ellipsis (right)", "error", "render failed"} {
		if !strings.Contains(got, want) {
			t.Fatalf("content missing %q:\n%s", want, got)
		}
	}
	for i, line := range strings.Split(got, "\n") {
		if w := xansi.StringWidth(line); w > 30 {
			t.Fatalf("line %d is %d columns wide: %q", i, w, line)
		}
	}
}

func TestModel_EmptyBeforeResize(t *testing.T) {
	m, err := New(Config{Profile: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.renderContent(); got != "" {
		t.Fatalf("content before resize = %q, want empty", got)
	}
}

func TestModel_FocusCycles(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Fatalf("focus after tab = %d, want 0", m.focus)
	}
	got := xansi.Strip(m.renderContent())
	if !strings.HasPrefix(got, "grapheme-wrap") || strings.Contains(got, "word-wrap") {
		t.Fatalf("focused content:\n%s", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != len(modes)-1 {
		t.Fatalf("focus after two shift+tab = %d, want %d", m.focus, len(modes)-1)
	}
	m = press(t, m, runes("n"))
	if m.focus != -1 {
		t.Fatalf("focus after last mode = %d, want -1", m.focus)
	}
	// overview plus one state per mode
	for range len(modes) + 1 {
		m = press(t, m, runes("n"))
	}
	if m.focus != -1 {
		t.Fatalf("focus after full cycle = %d, want -1", m.focus)
	}
}

func TestModel_ErrorModeKeepsHeading(t *testing.T) {
	m := newTestModel(t)
	for range len(modes) {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if modes[m.focus] != text.Error {
		t.Fatalf("focus = %d, want error mode", m.focus)
	}
	got := xansi.Strip(m.renderContent())
	first, _, _ := strings.Cut(got, "\n")
	if strings.TrimSpace(first) != "error" || !strings.Contains(got, "render failed") {
		t.Fatalf("error mode content:\n%s", got)
	}
	m = press(t, m, runes("t"))
	if got := m.renderContent(); strings.Contains(got, "\x1b[1m") || !strings.Contains(got, "render failed") {
		t.Fatalf("clean error mode content: %q", got)
	}
}

func TestModel_EllipsisPosition(t *testing.T) {
	m := newTestModel(t)
	for _, want := range []string{"left", "center", "right"} {
		m = press(t, m, runes("e"))
		if got := xansi.Strip(m.renderContent()); !strings.Contains(got, "ellipsis ("+want+")") {
			t.Fatalf("content missing ellipsis (%s):\n%s", want, got)
		}
	}
}

func TestModel_AmbiguityToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("w"))
	if m.opts.Policy != grapheme.Wide {
		t.Fatalf("policy = %v, want wide", m.opts.Policy)
	}
	m = press(t, m, runes("w"))
	if m.opts.Policy != grapheme.Standard {
		t.Fatalf("policy = %v, want standard", m.opts.Policy)
	}
}

func TestModel_CleanThemeDropsStyles(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.renderContent(), "\x1b[1m") {
		t.Fatal("expected bold headings before theme toggle")
	}
	m = press(t, m, runes("t"))
	if strings.Contains(m.renderContent(), "\x1b[1m") {
		t.Fatal("clean theme must drop every style")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestNew_RejectsBadProfile(t *testing.T) {
	p := config.Default()
	p.Overflow.Mode = "squash"
	if _, err := New(Config{Profile: p}); err == nil {
		t.Fatal("expected error for unknown overflow mode")
	}
}

func TestView_HasStatusBar(t *testing.T) {
	m := newTestModel(t)
	first, _, _ := strings.Cut(xansi.Strip(m.View()), "\n")
	if !strings.Contains(first, "mode all") {
		t.Fatalf("status line = %q", first)
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m := newTestModel(t)
	before := xansi.Strip(m.View())
	if strings.Contains(before, "prev mode") {
		t.Fatalf("help shown before toggle:\n%s", before)
	}

	m = press(t, m, runes("?"))
	got := xansi.Strip(m.View())
	for _, want := range []string{"╭", "shift+tab  prev mode", "q          quit"} {
		if !strings.Contains(got, want) {
			t.Fatalf("help overlay missing %q:\n%s", want, got)
		}
	}
	if n, want := strings.Count(got, "\n"), strings.Count(before, "\n"); n != want {
		t.Fatalf("overlay changed line count: %d, want %d", n, want)
	}
	first, _, _ := strings.Cut(got, "\n")
	if !strings.Contains(first, "mode all") {
		t.Fatalf("status line covered: %q", first)
	}

	m = press(t, m, runes("?"))
	if got := xansi.Strip(m.View()); got != before {
		t.Fatalf("help still shown after second toggle:\n%s", got)
	}
}
