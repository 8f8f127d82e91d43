package sapling

import "testing"

type recordingNotifier struct {
	events []SelectionEvent
}

func (n *recordingNotifier) Notify(ev SelectionEvent) {
	n.events = append(n.events, ev)
}

func TestEventKindString(t *testing.T) {
	if EventMoved.String() != "moved" {
		t.Errorf("EventMoved.String() = %q", EventMoved.String())
	}
	if EventKind(99).String() != "unknown" {
		t.Errorf("EventKind(99).String() = %q", EventKind(99).String())
	}
}

func TestHookSelectClearAndOrder(t *testing.T) {
	h := NewEditorHook(Vec2{100, 100})
	a, b, c := newTestEntity(1, 0, 0), newTestEntity(2, 0, 0), newTestEntity(3, 0, 0)

	h.SelectEntity(a, false)
	h.SelectEntity(b, false)
	h.SelectEntity(c, false)
	if got := h.SelectedIDs(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("SelectedIDs = %v, want [1 2 3]", got)
	}

	h.SelectEntity(b, true)
	if got := h.SelectedIDs(); len(got) != 1 || got[0] != 2 {
		t.Errorf("after clear select: %v, want [2]", got)
	}
}

func TestHookSelectionIterator(t *testing.T) {
	h := NewEditorHook(Vec2{})
	h.SelectEntity(newTestEntity(5, 1, 1), false)
	h.SelectEntity(newTestEntity(7, 2, 2), false)

	var ids []EntityID
	for id, e := range h.Selection() {
		if e.ID() != id {
			t.Errorf("entry %d holds entity %d", id, e.ID())
		}
		ids = append(ids, id)
	}
	if len(ids) != 2 || ids[0] != 5 || ids[1] != 7 {
		t.Errorf("Selection order = %v, want [5 7]", ids)
	}
}

func TestHookUnselectAll(t *testing.T) {
	h := NewEditorHook(Vec2{})
	var off []EntityID
	h.Subscribe(EventUnselected, func(ev SelectionEvent) { off = append(off, ev.Entity) })

	h.SelectEntity(newTestEntity(1, 0, 0), false)
	h.SelectEntity(newTestEntity(2, 0, 0), false)
	h.UnselectAll()

	if h.SelectedCount() != 0 {
		t.Errorf("SelectedCount = %d, want 0", h.SelectedCount())
	}
	if len(off) != 2 || off[0] != 1 || off[1] != 2 {
		t.Errorf("unselect order = %v, want [1 2]", off)
	}

	h.UnselectEntity(1)
	if len(off) != 2 {
		t.Error("unselecting an absent entity fired a notification")
	}
}

func TestHookHover(t *testing.T) {
	h := NewEditorHook(Vec2{})
	e := newTestEntity(4, 0, 0)
	var kinds []EventKind
	h.Subscribe(EventHovered, func(ev SelectionEvent) { kinds = append(kinds, ev.Kind) })
	h.Subscribe(EventUnhovered, func(ev SelectionEvent) { kinds = append(kinds, ev.Kind) })

	h.HoverEntity(e)
	h.HoverEntity(e)
	if !h.IsHovered(4) {
		t.Fatal("entity not hovered")
	}
	h.UnhoverAll()
	if h.IsHovered(4) {
		t.Error("entity still hovered after UnhoverAll")
	}
	if len(kinds) != 2 || kinds[0] != EventHovered || kinds[1] != EventUnhovered {
		t.Errorf("kinds = %v, want [hovered unhovered]", kinds)
	}
}

func TestHookOnEntitySelected(t *testing.T) {
	h := NewEditorHook(Vec2{})
	type toggle struct {
		id  EntityID
		sel bool
	}
	var got []toggle
	on, off := h.OnEntitySelected(func(id EntityID, selected bool) {
		got = append(got, toggle{id, selected})
	})

	e := newTestEntity(9, 0, 0)
	h.SelectEntity(e, false)
	h.UnselectEntity(9)
	want := []toggle{{9, true}, {9, false}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("toggles = %v, want %v", got, want)
	}

	on.Remove()
	off.Remove()
	h.SelectEntity(e, false)
	h.UnselectEntity(9)
	if len(got) != 2 {
		t.Errorf("removed callbacks still fired: %v", got)
	}
}

func TestCallbackHandleRemoveDuringEmit(t *testing.T) {
	h := NewEditorHook(Vec2{})
	calls := 0
	var handle CallbackHandle
	handle = h.Subscribe(EventSelected, func(SelectionEvent) {
		calls++
		handle.Remove()
	})
	h.SelectEntity(newTestEntity(1, 0, 0), false)
	h.SelectEntity(newTestEntity(2, 0, 0), false)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Zero handles are inert.
	CallbackHandle{}.Remove()
}

func TestHookEventPosition(t *testing.T) {
	h := NewEditorHook(Vec2{})
	var ev SelectionEvent
	h.Subscribe(EventSelected, func(e SelectionEvent) { ev = e })
	h.SelectEntity(newTestEntity(3, 12, 34), false)
	if ev.Entity != 3 || ev.Position != (Vec2{12, 34}) {
		t.Errorf("event = %+v", ev)
	}
}

func TestHookNotifierForwarding(t *testing.T) {
	h := NewEditorHook(Vec2{})
	n := &recordingNotifier{}
	h.Notifier = n

	local := 0
	h.Subscribe(EventSelected, func(SelectionEvent) {
		local++
		if len(n.events) != 0 {
			t.Error("notifier ran before local subscribers")
		}
	})
	h.SelectEntity(newTestEntity(1, 0, 0), false)
	h.UnselectAll()

	if local != 1 {
		t.Errorf("local calls = %d, want 1", local)
	}
	if len(n.events) != 2 || n.events[0].Kind != EventSelected || n.events[1].Kind != EventUnselected {
		t.Errorf("notifier events = %v", n.events)
	}
}

func TestHookRemoveSelected(t *testing.T) {
	w := &testWorld{}
	a := w.add(1, 0, 0)
	b := w.add(2, 0, 0)
	stage := &testStage{world: w}

	h := NewEditorHook(Vec2{})
	h.Stage = stage
	h.SelectEntity(a, false)
	h.HoverEntity(b)
	h.SelectEntity(b, false)

	var kinds []EventKind
	for k := EventKind(0); k < eventKindCount; k++ {
		h.Subscribe(k, func(ev SelectionEvent) { kinds = append(kinds, ev.Kind) })
	}
	h.RemoveSelected()

	if len(stage.removed) != 2 {
		t.Fatalf("removed = %v, want 2 entities", stage.removed)
	}
	if h.SelectedCount() != 0 || h.IsHovered(2) {
		t.Error("sets not cleared after removal")
	}
	want := []EventKind{EventRemoved, EventRemoved, EventUnselected, EventUnselected, EventUnhovered}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestHookRemoveSelectedWithoutStage(t *testing.T) {
	h := NewEditorHook(Vec2{})
	h.SelectEntity(newTestEntity(1, 0, 0), false)
	h.RemoveSelected()
	if h.SelectedCount() != 1 {
		t.Errorf("SelectedCount = %d, want 1", h.SelectedCount())
	}
}

func TestHookBounds(t *testing.T) {
	h := NewEditorHook(Vec2{640, 480})
	h.Offset = Vec2{10, 20}
	want := Rect{X: 10, Y: 20, Width: 640, Height: 480}
	if h.Bounds() != want {
		t.Errorf("Bounds = %v, want %v", h.Bounds(), want)
	}
}

func TestSelectionSetZeroValue(t *testing.T) {
	var s SelectionSet
	if s.Len() != 0 || s.Has(1) {
		t.Error("zero SelectionSet not empty")
	}
	if _, ok := s.Get(1); ok {
		t.Error("Get on empty set succeeded")
	}
	if !s.add(newTestEntity(1, 0, 0)) || s.add(newTestEntity(1, 5, 5)) {
		t.Error("add should report only the first insertion")
	}
	e, _ := s.Get(1)
	if e.Position() != (Vec2{}) {
		t.Error("second add replaced the stored entity")
	}
	ids := s.IDs()
	ids[0] = 42
	if !s.Has(1) {
		t.Error("IDs returned the internal slice")
	}
}
