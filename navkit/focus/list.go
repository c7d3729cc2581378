package focus

import (
	"keynav/navkit/gesture"
	"keynav/navkit/viewport"
)

// DefaultSpacing is the vertical gap between items in pixels.
const DefaultSpacing = 5

// List is an ordered, append-only sequence of items with one focused entry.
//
// The visible window is recomputed from scratch whenever focus, content or
// viewport height change, so the focused item is always on screen.
type List struct {
	keys    Keymap
	items   []Item
	focused int
	spacing int
	height  int
	win     viewport.Window
}

// NewList returns an empty list driven by keys.
func NewList(keys Keymap) *List {
	return &List{keys: keys, spacing: DefaultSpacing}
}

// Add appends it. Nil items are ignored.
func (l *List) Add(it Item) {
	if it == nil {
		return
	}
	l.items = append(l.items, it)
	l.sync()
}

func (l *List) Len() int { return len(l.items) }

// Item returns the item at i, or nil when out of range.
func (l *List) Item(i int) Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Focused returns the focused index. It is 0 for an empty list.
func (l *List) Focused() int { return l.focused }

// FocusedItem returns the focused item, or nil for an empty list.
func (l *List) FocusedItem() Item { return l.Item(l.focused) }

// Window returns the visible range computed by the last layout.
func (l *List) Window() viewport.Window { return l.win }

// Keymap returns the keys the list navigates with.
func (l *List) Keymap() Keymap { return l.keys }

// SetSpacing sets the vertical gap between items. Negative values become 0.
func (l *List) SetSpacing(px int) {
	if px < 0 {
		px = 0
	}
	l.spacing = px
	l.sync()
}

// Spacing returns the vertical gap between items.
func (l *List) Spacing() int { return l.spacing }

// SetViewportHeight sets the available height in pixels.
func (l *List) SetViewportHeight(px int) {
	if px < 0 {
		px = 0
	}
	l.height = px
	l.sync()
}

// MoveFocusUp focuses the previous item. It is a no-op at the top.
func (l *List) MoveFocusUp() bool {
	if l.focused <= 0 || len(l.items) == 0 {
		return false
	}
	l.setFocus(l.focused - 1)
	return true
}

// MoveFocusDown focuses the next item. It is a no-op at the bottom.
func (l *List) MoveFocusDown() bool {
	if l.focused >= len(l.items)-1 {
		return false
	}
	l.setFocus(l.focused + 1)
	return true
}

// SetFocus focuses item i, clamped to the list bounds.
func (l *List) SetFocus(i int) {
	if len(l.items) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(l.items) {
		i = len(l.items) - 1
	}
	l.setFocus(i)
}

// EnterEdit puts the focused item into edit mode if it supports one.
func (l *List) EnterEdit() bool {
	ed, ok := l.FocusedItem().(Editable)
	if !ok || !ed.CanEdit() {
		return false
	}
	ed.SetEditing(true)
	return true
}

// Editing reports whether the focused item is in edit mode.
func (l *List) Editing() bool {
	ed, ok := l.FocusedItem().(Editable)
	return ok && ed.Editing()
}

// Dispatch routes one gesture. An item in edit mode sees it first; what it
// consumes is never also treated as navigation.
func (l *List) Dispatch(ev gesture.Event) {
	if ev.Kind == gesture.None || len(l.items) == 0 {
		return
	}
	in := l.keys.Resolve(ev)
	it := l.items[l.focused]

	if ed, ok := it.(Editable); ok && ed.Editing() {
		if it.HandleInput(in) {
			return
		}
	}
	if in.Kind != gesture.ShortClick {
		return
	}

	switch in.Key {
	case KeyUp:
		l.MoveFocusUp()
	case KeyDown:
		l.MoveFocusDown()
	case KeySelect:
		if !l.EnterEdit() {
			it.HandleInput(in)
		}
	}
}

// Draw paints the visible items top-down starting at (x, y).
func (l *List) Draw(f *Frame, x, y, width int) {
	yy := y
	for i := l.win.First; i < l.win.First+l.win.Count && i < len(l.items); i++ {
		it := l.items[i]
		it.Draw(f, x, yy, width)
		yy += it.Height() + l.spacing
	}
}

func (l *List) setFocus(i int) {
	if i != l.focused {
		if ed, ok := l.items[l.focused].(Editable); ok && ed.Editing() {
			ed.SetEditing(false)
		}
	}
	l.focused = i
	l.sync()
}

func (l *List) sync() {
	for i, it := range l.items {
		it.SetSelected(i == l.focused)
	}
	l.win = viewport.Fit(len(l.items), l.focused, l.height, l.spacing, func(i int) int {
		return l.items[i].Height()
	})
}
