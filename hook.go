package sapling

import "iter"

// EditorHook is the shared editor state passed to every Update and Draw
// call. It owns the hover and selection sets and the notification registry.
type EditorHook struct {
	// Offset is the screen position of the stage's top-left corner.
	Offset Vec2
	// StageSize is the screen size of the editable area. The cursor must be
	// inside Offset+StageSize for entities to be hovered or a marquee to
	// start.
	StageSize Vec2

	// Camera maps the cursor into world space. Nil means screen and world
	// coincide.
	Camera *Camera
	// Stage receives removal requests. Nil disables deletion.
	Stage Stage
	// Notifier, when set, receives every event after local subscribers.
	Notifier Notifier

	// CursorWorld is the cursor in world space, updated each frame.
	CursorWorld Vec2
	// CursorScreen is the cursor relative to Offset, updated each frame.
	CursorScreen Vec2
	// Cursor is the pointer shape the host should display.
	Cursor CursorStyle
	// SelectionBox is the active marquee in world space, or the zero Rect.
	SelectionBox Rect

	// UsingCursor is set by tools that own the cursor; the controller then
	// discards its transient state and idles.
	UsingCursor bool
	// EntityToBePlaced pauses the controller while a placement is pending.
	EntityToBePlaced bool
	// EnableSelectChildren allows hit-testing entities that have a parent.
	EnableSelectChildren bool
	// ShowingUI is set while a GUI surface covers the stage. Marquee
	// selection does not start while it is set.
	ShowingUI bool
	// ShowDebug mirrors the editor overlay toggle.
	ShowDebug bool

	selected SelectionSet
	hovered  SelectionSet
	handlers notifyRegistry
}

// NewEditorHook returns a hook whose stage covers size pixels from the
// screen origin.
func NewEditorHook(size Vec2) *EditorHook {
	return &EditorHook{StageSize: size}
}

// Bounds returns the stage rectangle in screen space.
func (h *EditorHook) Bounds() Rect {
	return Rect{X: h.Offset.X, Y: h.Offset.Y, Width: h.StageSize.X, Height: h.StageSize.Y}
}

// Subscribe registers fn for events of the given kind.
func (h *EditorHook) Subscribe(kind EventKind, fn func(SelectionEvent)) CallbackHandle {
	return h.handlers.add(kind, fn)
}

// OnEntitySelected registers fn for selection toggles. selected is false
// when the entity left the selection.
func (h *EditorHook) OnEntitySelected(fn func(id EntityID, selected bool)) (on, off CallbackHandle) {
	on = h.Subscribe(EventSelected, func(ev SelectionEvent) { fn(ev.Entity, true) })
	off = h.Subscribe(EventUnselected, func(ev SelectionEvent) { fn(ev.Entity, false) })
	return on, off
}

func (h *EditorHook) emit(kind EventKind, e Entity) {
	ev := SelectionEvent{Kind: kind, Entity: e.ID()}
	if !e.Destroyed() {
		ev.Position = e.Position()
	}
	h.handlers.emit(ev)
	if h.Notifier != nil {
		h.Notifier.Notify(ev)
	}
}

// --- Selection ---

// IsSelected reports whether id is selected.
func (h *EditorHook) IsSelected(id EntityID) bool {
	return h.selected.Has(id)
}

// SelectedCount returns the number of selected entities.
func (h *EditorHook) SelectedCount() int {
	return h.selected.Len()
}

// Selection yields the selected entities in selection order.
func (h *EditorHook) Selection() iter.Seq2[EntityID, Entity] {
	return h.selected.All()
}

// SelectedIDs returns the selected IDs in selection order.
func (h *EditorHook) SelectedIDs() []EntityID {
	return h.selected.IDs()
}

// SelectEntity adds e to the selection. With clear set, every other entity
// is unselected first. Selecting an already selected entity fires nothing.
func (h *EditorHook) SelectEntity(e Entity, clear bool) {
	if clear {
		for _, other := range h.selected.snapshot() {
			if other.ID() != e.ID() {
				h.UnselectEntity(other.ID())
			}
		}
	}
	if h.selected.add(e) {
		Logger().Debug("entity selected", "entity", e.ID())
		h.emit(EventSelected, e)
	}
}

// UnselectEntity removes id from the selection.
func (h *EditorHook) UnselectEntity(id EntityID) {
	if e, ok := h.selected.remove(id); ok {
		h.emit(EventUnselected, e)
	}
}

// UnselectAll clears the selection.
func (h *EditorHook) UnselectAll() {
	for _, e := range h.selected.snapshot() {
		h.UnselectEntity(e.ID())
	}
}

// --- Hover ---

// IsHovered reports whether id is hovered.
func (h *EditorHook) IsHovered(id EntityID) bool {
	return h.hovered.Has(id)
}

// Hovered yields the hovered entities.
func (h *EditorHook) Hovered() iter.Seq2[EntityID, Entity] {
	return h.hovered.All()
}

// HoverEntity marks e as hovered.
func (h *EditorHook) HoverEntity(e Entity) {
	if h.hovered.add(e) {
		h.emit(EventHovered, e)
	}
}

// UnhoverEntity clears the hover mark on id.
func (h *EditorHook) UnhoverEntity(id EntityID) {
	if e, ok := h.hovered.remove(id); ok {
		h.emit(EventUnhovered, e)
	}
}

// UnhoverAll clears every hover mark.
func (h *EditorHook) UnhoverAll() {
	for _, e := range h.hovered.snapshot() {
		h.UnhoverEntity(e.ID())
	}
}

// --- Stage ---

// RemoveSelected asks the stage to remove every selected entity and clears
// the selection. Without a stage it logs a warning and changes nothing.
func (h *EditorHook) RemoveSelected() {
	if h.selected.Len() == 0 {
		return
	}
	if h.Stage == nil {
		Logger().Warn("no stage to remove entities from", "selected", h.selected.Len())
		return
	}
	for _, e := range h.selected.snapshot() {
		h.Stage.RemoveEntity(e.ID())
		h.emit(EventRemoved, e)
	}
	h.UnselectAll()
	h.UnhoverAll()
}

// forget drops a destroyed entity from both sets. Only the unselect is
// reported.
func (h *EditorHook) forget(id EntityID) {
	if e, ok := h.selected.remove(id); ok {
		h.emit(EventUnselected, e)
	}
	h.hovered.remove(id)
}
