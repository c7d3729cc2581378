// Package form lays out editable fields in a focus list.
package form

import (
	"keynav/navkit/focus"
	"keynav/navkit/gesture"
)

// Spacing is the vertical gap between fields.
const Spacing = focus.DefaultSpacing

// View is a form occupying a rectangle of the display.
type View struct {
	list *focus.List

	offsetX, offsetY int
	width, height    int
	reduceW, reduceH int
}

// NewView returns an empty form on a width x height display.
func NewView(keys focus.Keymap, width, height int) *View {
	v := &View{list: focus.NewList(keys), width: width, height: height}
	v.list.SetSpacing(Spacing)
	v.layout()
	return v
}

// Add appends a field. Nil fields are ignored.
func (v *View) Add(it focus.Item) { v.list.Add(it) }

// List exposes the underlying focus list.
func (v *View) List() *focus.List { return v.list }

// SetOffset moves the form origin, shrinking the visible area.
func (v *View) SetOffset(x, y int) {
	v.offsetX, v.offsetY = x, y
	v.layout()
}

// ReduceVisible trims pixels off the right and bottom edges.
func (v *View) ReduceVisible(w, h int) {
	v.reduceW, v.reduceH = w, h
	v.layout()
}

// VisibleWidth returns the width fields are drawn with.
func (v *View) VisibleWidth() int { return v.width - v.offsetX - v.reduceW }

// VisibleHeight returns the height the viewport is fitted into.
func (v *View) VisibleHeight() int { return v.height - v.offsetY - v.reduceH }

// Dispatch routes one gesture to the focused field or navigates.
func (v *View) Dispatch(ev gesture.Event) { v.list.Dispatch(ev) }

// Draw paints the visible fields.
func (v *View) Draw(f *focus.Frame) {
	v.list.Draw(f, v.offsetX, v.offsetY, v.VisibleWidth())
}

func (v *View) layout() {
	v.list.SetViewportHeight(v.VisibleHeight())
}

func blinkOn(now gesture.Millis) bool { return now%1000 < 500 }
