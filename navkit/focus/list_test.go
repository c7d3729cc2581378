package focus

import (
	"testing"

	"keynav/navkit/gesture"
	"keynav/navkit/surface"
)

const (
	srcUp gesture.SourceID = iota
	srcDown
	srcLeft
	srcRight
	srcSelect
)

var testKeys = Keymap{Up: srcUp, Down: srcDown, Left: srcLeft, Right: srcRight, Select: srcSelect}

func click(src gesture.SourceID) gesture.Event {
	return gesture.Event{Source: src, Kind: gesture.ShortClick}
}

type fakeItem struct {
	h        int
	selected bool
	editable bool
	editing  bool
	consume  bool
	inputs   []Input
	draws    int
	drawY    int
}

func (f *fakeItem) Height() int                { return f.h }
func (f *fakeItem) SetSelected(selected bool)  { f.selected = selected }
func (f *fakeItem) Draw(_ *Frame, _, y, _ int) { f.draws++; f.drawY = y }
func (f *fakeItem) CanEdit() bool              { return f.editable }
func (f *fakeItem) Editing() bool              { return f.editing }
func (f *fakeItem) SetEditing(editing bool)    { f.editing = editing }
func (f *fakeItem) HandleInput(in Input) bool {
	f.inputs = append(f.inputs, in)
	if in.Is(KeySelect, gesture.DoubleClick) && f.editing {
		f.editing = false
		return true
	}
	return f.consume
}

func newTestList(hs ...int) (*List, []*fakeItem) {
	l := NewList(testKeys)
	l.SetViewportHeight(64)
	var items []*fakeItem
	for _, h := range hs {
		it := &fakeItem{h: h}
		items = append(items, it)
		l.Add(it)
	}
	return l, items
}

func TestMoveFocusBounds(t *testing.T) {
	l, items := newTestList(12, 12, 12)

	if l.MoveFocusUp() {
		t.Fatal("MoveFocusUp() at top = true, want false")
	}
	l.MoveFocusDown()
	l.MoveFocusDown()
	if l.MoveFocusDown() {
		t.Fatal("MoveFocusDown() at bottom = true, want false")
	}
	if l.Focused() != 2 {
		t.Fatalf("Focused() = %d, want 2", l.Focused())
	}
	if !items[2].selected || items[0].selected || items[1].selected {
		t.Fatal("selected flag not on focused item only")
	}
}

func TestFocusAlwaysInWindow(t *testing.T) {
	l, _ := newTestList(29, 14, 22, 12, 29, 14, 22, 12)

	seq := []bool{true, true, true, false, true, true, true, true, true, false, false, false, false, false, false, false, false}
	for step, down := range seq {
		if down {
			l.MoveFocusDown()
		} else {
			l.MoveFocusUp()
		}
		f := l.Focused()
		if f < 0 || f >= l.Len() {
			t.Fatalf("step %d: focus %d out of range", step, f)
		}
		if !l.Window().Contains(f) {
			t.Fatalf("step %d: focus %d outside window %+v", step, f, l.Window())
		}
	}
}

func TestEmptyListIsNoop(t *testing.T) {
	l := NewList(testKeys)
	l.MoveFocusDown()
	l.MoveFocusUp()
	l.SetFocus(3)
	l.Dispatch(click(srcSelect))
	if l.EnterEdit() {
		t.Fatal("EnterEdit() on empty list = true")
	}
	if l.Focused() != 0 || l.FocusedItem() != nil {
		t.Fatalf("empty list focus = %d / %v", l.Focused(), l.FocusedItem())
	}
	l.Add(nil)
	if l.Len() != 0 {
		t.Fatalf("Len() = %d after adding nil", l.Len())
	}
}

func TestDispatchNavigation(t *testing.T) {
	l, _ := newTestList(12, 12, 12)

	l.Dispatch(click(srcDown))
	l.Dispatch(click(srcDown))
	l.Dispatch(click(srcUp))
	if l.Focused() != 1 {
		t.Fatalf("Focused() = %d, want 1", l.Focused())
	}

	// Long presses and double clicks do not navigate.
	l.Dispatch(gesture.Event{Source: srcDown, Kind: gesture.LongPress})
	l.Dispatch(gesture.Event{Source: srcDown, Kind: gesture.DoubleClick})
	l.Dispatch(gesture.Event{Source: gesture.NoSource})
	if l.Focused() != 1 {
		t.Fatalf("Focused() = %d after non-click gestures, want 1", l.Focused())
	}
}

func TestSelectEntersEditOrFires(t *testing.T) {
	l, items := newTestList(12, 12)
	items[0].editable = true

	l.Dispatch(click(srcSelect))
	if !items[0].editing {
		t.Fatal("select on editable item did not enter edit mode")
	}
	if len(items[0].inputs) != 0 {
		t.Fatalf("editable item received %d inputs on enter, want 0", len(items[0].inputs))
	}

	items[0].editing = false
	l.MoveFocusDown()
	l.Dispatch(click(srcSelect))
	if len(items[1].inputs) != 1 || items[1].inputs[0].Key != KeySelect {
		t.Fatalf("non-editable item inputs = %+v, want one select", items[1].inputs)
	}
}

func TestEditingItemSeesInputFirst(t *testing.T) {
	l, items := newTestList(12, 12)
	items[0].editable = true
	items[0].consume = true
	l.EnterEdit()

	l.Dispatch(click(srcDown))
	if l.Focused() != 0 {
		t.Fatalf("consumed input moved focus to %d", l.Focused())
	}
	if len(items[0].inputs) != 1 {
		t.Fatalf("editing item inputs = %d, want 1", len(items[0].inputs))
	}

	// Unconsumed input falls through to navigation and ends the edit.
	items[0].consume = false
	l.Dispatch(click(srcDown))
	if l.Focused() != 1 {
		t.Fatalf("Focused() = %d, want 1", l.Focused())
	}
	if items[0].editing {
		t.Fatal("item left while editing is still editing")
	}
}

func TestDoubleClickLeavesEdit(t *testing.T) {
	l, items := newTestList(12)
	items[0].editable = true
	l.Dispatch(click(srcSelect))
	l.Dispatch(gesture.Event{Source: srcSelect, Kind: gesture.DoubleClick})
	if items[0].editing || l.Editing() {
		t.Fatal("double-click did not leave edit mode")
	}
}

func TestDrawVisibleOnly(t *testing.T) {
	l, items := newTestList(29, 14, 22, 12)
	l.SetFocus(3)

	f := &Frame{Canvas: surface.New(surface.NewMemory(128, 64))}
	l.Draw(f, 0, 0, 128)

	if items[0].draws != 0 {
		t.Fatal("item above window drawn")
	}
	for i := 1; i < 4; i++ {
		if items[i].draws != 1 {
			t.Fatalf("item %d draws = %d, want 1", i, items[i].draws)
		}
	}
	if items[2].drawY != 14+5 || items[3].drawY != 14+5+22+5 {
		t.Fatalf("draw y = %d/%d, want 19/46", items[2].drawY, items[3].drawY)
	}
}

func TestKeymapResolve(t *testing.T) {
	in := testKeys.Resolve(click(srcRight))
	if !in.Is(KeyRight, gesture.ShortClick) {
		t.Fatalf("Resolve(right) = %+v", in)
	}
	un := UnboundKeymap()
	if got := un.Resolve(click(srcUp)).Key; got != KeyNone {
		t.Fatalf("unbound Resolve = %v, want none", got)
	}
	if got := testKeys.Resolve(gesture.Event{Source: gesture.NoSource}).Key; got != KeyNone {
		t.Fatalf("Resolve(NoSource) = %v, want none", got)
	}
	if KeySelect.String() != "select" || KeyNone.String() != "none" {
		t.Fatal("Key.String mismatch")
	}
}
