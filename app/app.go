// Package app wires the gesture engine, navigators and HAL into one poll
// loop.
package app

import (
	"errors"
	"fmt"
	"time"

	"keynav/hal"
	"keynav/internal/buildinfo"
	"keynav/navkit/focus"
	"keynav/navkit/form"
	"keynav/navkit/gesture"
	"keynav/navkit/input"
	"keynav/navkit/menu"
	"keynav/navkit/surface"
	"keynav/navkit/textview"
)

// Screen identifies the navigator that owns input.
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenForm
	ScreenLog
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenForm:
		return "form"
	case ScreenLog:
		return "log"
	default:
		return "?"
	}
}

// System holds every piece of UI state. It is built once from a HAL and
// advanced by Step from a single goroutine.
type System struct {
	cfg    Config
	log    hal.Logger
	clock  hal.Clock
	engine *gesture.Engine
	sample gesture.Sampler
	keys   focus.Keymap
	back   gesture.SourceID

	canvas *surface.Canvas
	frame  focus.Frame
	pushed bool

	menu   *menu.Navigator
	form   *form.View
	events *textview.Viewer
	screen Screen

	name    *form.TextInput
	light   *form.CheckBox
	mode    *form.Choice
	pending []gesture.Event
}

// NewSystem configures the button pins and builds the screens.
func NewSystem(h hal.HAL, cfg Config) (*System, error) {
	cfg = cfg.withDefaults()
	if h == nil || h.Display() == nil || h.Clock() == nil {
		return nil, errors.New("app: incomplete hal")
	}
	log := h.Logger()
	if log == nil {
		log = discard{}
	}

	sample, err := input.PinSampler(h.GPIO(), cfg.Buttons)
	if err != nil {
		return nil, err
	}

	s := &System{
		cfg:    cfg,
		log:    log,
		clock:  h.Clock(),
		engine: gesture.New(cfg.Thresholds),
		sample: sample,
		canvas: surface.New(h.Display()),
	}
	s.frame.Canvas = s.canvas

	if _, err := input.Register(s.engine, cfg.Buttons); err != nil {
		return nil, err
	}
	for _, b := range cfg.Buttons {
		s.logf("input: %s on channel %d", b.Name, b.Channel)
	}
	s.keys = keymap(s.engine)
	s.back = s.keys.Left

	w, hgt := s.canvas.Width(), s.canvas.Height()
	s.events = textview.New(s.keys, w, hgt, cfg.MaxLogLines)
	s.buildForm(w, hgt)
	s.buildMenu(w, hgt)

	th := s.engine.Thresholds()
	s.logf("keynav %s: long %dms short %dms double %dms",
		buildinfo.Short(), th.LongPress, th.Short, th.Double)
	return s, nil
}

func keymap(e *gesture.Engine) focus.Keymap {
	k := focus.UnboundKeymap()
	bind := func(dst *gesture.SourceID, name string) {
		if id, ok := e.Lookup(name); ok {
			*dst = id
		}
	}
	bind(&k.Up, "UP")
	bind(&k.Down, "DOWN")
	bind(&k.Left, "LEFT")
	bind(&k.Right, "RIGHT")
	bind(&k.Select, "CENTER")
	return k
}

func (s *System) buildForm(w, h int) {
	s.form = form.NewView(s.keys, w, h)
	s.name = form.NewTextInput("Name", "keynav")
	s.light = form.NewCheckBox("Backlight", true)
	s.mode = form.NewChoice("Mode", []string{"Normal", "Fast", "Silent"}, 0)
	s.form.Add(s.name)
	s.form.Add(s.light)
	s.form.Add(s.mode)
	s.form.Add(form.NewButton("Save", func(string) {
		s.logf("form: name=%q backlight=%t mode=%s", s.name.Value(), s.light.Checked(), s.mode.Value())
		s.Show(ScreenMenu)
	}))
	s.form.Add(form.NewButton("Cancel", func(string) { s.Show(ScreenMenu) }))
}

func (s *System) buildMenu(w, h int) {
	t := menu.NewTree()
	t.Add(menu.Root,
		t.Item("Settings", func() { s.Show(ScreenForm) }),
		t.Item("Event log", func() { s.Show(ScreenLog) }),
		t.Menu("Tools",
			t.Item("Clear event log", func() {
				s.events.Clear()
				s.logf("log: cleared")
			}),
			t.Item("Version", func() { s.logf("version: %s", buildinfo.Short()) }),
		),
		t.Menu("Long entries scroll back and forth",
			t.Item("Alpha", nil),
			t.Item("Bravo", nil),
			t.Item("Charlie", nil),
			t.Item("Delta", nil),
			t.Item("Echo", nil),
			t.Item("Foxtrot", nil),
			t.Item("Golf", nil),
		),
	)
	for _, id := range t.Ambiguous() {
		s.logf("menu: %q has children and an action; it opens the submenu", t.Label(id))
	}

	cfg := menu.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.ResetOnBack = s.cfg.ResetOnBack
	s.menu = menu.New(t, s.keys, cfg)
}

// Screen returns the screen that owns input.
func (s *System) Screen() Screen { return s.screen }

// Menu, Form and Events expose the screens.
func (s *System) Menu() *menu.Navigator    { return s.menu }
func (s *System) Form() *form.View         { return s.form }
func (s *System) Events() *textview.Viewer { return s.events }

// Show hands input to screen.
func (s *System) Show(screen Screen) {
	if screen == s.screen {
		return
	}
	s.logf("screen: %s -> %s", s.screen, screen)
	s.screen = screen
}

// Step samples the buttons, dispatches every gesture raised and redraws.
func (s *System) Step() error {
	now := gesture.Millis(s.clock.Millis())
	s.pending = s.engine.TickAll(now, s.sample, s.pending[:0])
	for _, ev := range s.pending {
		s.handle(now, ev)
	}

	s.frame.Now = now
	s.canvas.Clear()
	s.active().Draw(&s.frame)
	if err := s.canvas.Flush(); err != nil {
		if errors.Is(err, hal.ErrNotImplemented) {
			return nil
		}
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

func (s *System) handle(now gesture.Millis, ev gesture.Event) {
	line := fmt.Sprintf("%d %s %s", uint32(now), ev.Name, ev.Kind)
	// The log does not record its own scrolling.
	if s.screen != ScreenLog {
		s.events.AddLine(line)
	}
	if s.cfg.Debug {
		s.log.WriteLineString("gesture: " + line)
	}

	if ev.Is(s.back, gesture.LongPress) {
		if s.screen == ScreenMenu {
			s.menu.SetMenu(menu.Root)
		}
		s.Show(ScreenMenu)
		return
	}
	s.active().Dispatch(ev)
}

func (s *System) active() focus.Navigator {
	switch s.screen {
	case ScreenForm:
		return s.form
	case ScreenLog:
		return s.events
	default:
		return s.menu
	}
}

func (s *System) logf(format string, args ...any) {
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

type discard struct{}

func (discard) WriteLineString(string) {}
func (discard) WriteLineBytes([]byte)  {}

// New builds a System and returns its Step as the runner callback. A build
// error is logged and returned from every call.
func New(h hal.HAL, cfg Config) func() error {
	s, err := NewSystem(h, cfg)
	if err != nil {
		if h != nil && h.Logger() != nil {
			h.Logger().WriteLineString(err.Error())
		}
		return func() error { return err }
	}
	return s.guardedStep
}

// Run steps the UI forever at cfg.PollInterval.
func Run(h hal.HAL, cfg Config) {
	cfg = cfg.withDefaults()
	step := New(h, cfg)
	for {
		if err := step(); err != nil && h.Logger() != nil {
			h.Logger().WriteLineString(err.Error())
		}
		time.Sleep(cfg.PollInterval)
	}
}
