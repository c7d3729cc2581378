package menu

import (
	"keynav/navkit/focus"
	"keynav/navkit/hscroll"
	"keynav/navkit/surface"
	"keynav/navkit/viewport"
)

const rightPadding = 1

// Draw paints the visible rows and the scroll indicator.
func (n *Navigator) Draw(f *focus.Frame) {
	c := f.Canvas
	rows := n.Rows()
	if rows <= 0 {
		return
	}
	cw := c.CharWidth()
	items := n.Items()

	prefixW := hscroll.Len(n.cfg.Prefix) * cw
	maxChars := (n.cfg.Width - rightPadding) / cw
	labelRoom := n.cfg.Width - prefixW - cw - rightPadding

	c.SetTextWrap(false)
	for i := 0; i < rows; i++ {
		idx := n.first + i
		if idx >= len(items) {
			break
		}
		label := n.tree.Label(items[idx])
		x := n.cfg.X
		y := n.cfg.Y + i*n.cfg.LineHeight

		if idx != n.focused {
			c.TextAt(x, y, surface.On, hscroll.Truncate(label, maxChars, hscroll.Ellipsis))
			continue
		}

		c.TextAt(x, y, surface.On, n.cfg.Prefix)
		x += prefixW
		if idx != n.labelFor {
			n.label.Reset(f.Now)
			n.labelFor = idx
		}
		labelW := hscroll.Len(label) * cw
		if labelW <= labelRoom {
			c.TextAt(x, y, surface.On, label)
			continue
		}
		off := n.label.Update(f.Now, labelW-labelRoom)
		c.TextAt(x, y, surface.On, hscroll.Slice(label, off/cw, (labelRoom+cw-1)/cw))
	}

	pos := viewport.Marker(n.focused, len(items), n.cfg.Height)
	c.ScrollBar(n.cfg.X+n.cfg.Width-2, n.cfg.Y, n.cfg.Height, pos, len(items) > 0)
}

// LabelOffset returns the current pixel offset of the focused label.
func (n *Navigator) LabelOffset() int { return n.label.Offset() }
