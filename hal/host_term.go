//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TermConfig controls the terminal simulator.
type TermConfig struct {
	Hz int

	// Terminals report key presses but not releases, so a key grounds its
	// button for Hold, refreshed by autorepeat. Shifted keys hold for
	// LongHold to produce a long press.
	Hold     time.Duration
	LongHold time.Duration

	LogLines int
}

func (c TermConfig) withDefaults() TermConfig {
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if c.Hold <= 0 {
		c.Hold = 120 * time.Millisecond
	}
	if c.LongHold <= 0 {
		c.LongHold = time.Second
	}
	if c.LogLines <= 0 {
		c.LogLines = 4
	}
	return c
}

// RunTerminal runs the UI inside the terminal, drawing the panel with
// half-block characters. It blocks until the user quits or ctx ends.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TermConfig) error {
	cfg = cfg.withDefaults()
	tail := newLogTail(cfg.LogLines)
	h := newHost(newHostTime(), nil, tail)

	m := &termModel{
		h:        h,
		step:     newApp(h),
		cfg:      cfg,
		interval: time.Second / time.Duration(cfg.Hz),
		holds:    make(map[string]time.Time),
		tail:     tail,
		px:       make([]byte, h.fb.width*h.fb.height),
		style:    defaultTermStyle(),
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return m.err
}

type termKey struct {
	button string
	long   bool
}

var termKeys = map[string]termKey{
	"up":          {"UP", false},
	"k":           {"UP", false},
	"down":        {"DOWN", false},
	"j":           {"DOWN", false},
	"left":        {"LEFT", false},
	"h":           {"LEFT", false},
	"right":       {"RIGHT", false},
	"l":           {"RIGHT", false},
	"enter":       {"CENTER", false},
	" ":           {"CENTER", false},
	"shift+up":    {"UP", true},
	"K":           {"UP", true},
	"shift+down":  {"DOWN", true},
	"J":           {"DOWN", true},
	"shift+left":  {"LEFT", true},
	"H":           {"LEFT", true},
	"shift+right": {"RIGHT", true},
	"L":           {"RIGHT", true},
}

type termStyle struct {
	Frame  lipgloss.Style
	Footer lipgloss.Style
	Log    lipgloss.Style
}

func defaultTermStyle() termStyle {
	accent := lipgloss.Color("#7FDBFF")
	muted := lipgloss.Color("#7D7D7D")
	return termStyle{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(lipgloss.Color("#D8EEFF")),
		Footer: lipgloss.NewStyle().
			Foreground(muted),
		Log: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

type termTick time.Time

type termModel struct {
	h        *hostHAL
	step     func() error
	cfg      TermConfig
	interval time.Duration
	holds    map[string]time.Time
	tail     *logTail
	px       []byte
	style    termStyle
	width    int
	err      error
}

func (m *termModel) Init() tea.Cmd { return m.tick() }

func (m *termModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return termTick(t) })
}

func (m *termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		if k, ok := termKeys[msg.String()]; ok {
			m.hold(k, time.Now())
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case termTick:
		m.release(time.Time(msg))
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *termModel) hold(k termKey, now time.Time) {
	d := m.cfg.Hold
	if k.long {
		d = m.cfg.LongHold
	}
	until := now.Add(d)
	if prev, ok := m.holds[k.button]; ok && prev.After(until) {
		until = prev
	}
	m.holds[k.button] = until
	m.h.press(k.button, true)
}

func (m *termModel) release(now time.Time) {
	for name, until := range m.holds {
		if !now.Before(until) {
			delete(m.holds, name)
			m.h.press(name, false)
		}
	}
}

func (m *termModel) View() string {
	m.h.fb.snapshot(m.px)
	panel := m.style.Frame.Render(halfBlocks(m.px, m.h.fb.width, m.h.fb.height))

	width := lipgloss.Width(panel)
	if m.width > 0 && m.width < width {
		width = m.width
	}
	help := "arrows/hjkl move  enter/space select  shift = long press  q quit"
	lines := []string{panel, m.style.Footer.Render(runewidth.Truncate(help, width, "…"))}
	for _, l := range m.tail.Lines() {
		lines = append(lines, m.style.Log.Render(runewidth.Truncate(l, width, "…")))
	}
	return strings.Join(lines, "\n")
}

// halfBlocks packs two pixel rows into each text row.
func halfBlocks(px []byte, w, h int) string {
	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := px[y*w+x] != 0
			bottom := y+1 < h && px[(y+1)*w+x] != 0
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
