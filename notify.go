package sapling

import "slices"

// EventKind identifies an editor notification.
type EventKind uint8

const (
	EventSelected   EventKind = iota // entity added to the selection
	EventUnselected                  // entity removed from the selection
	EventHovered                     // cursor entered the entity's hit box
	EventUnhovered                   // cursor left the entity's hit box
	EventMoved                       // entity moved by a drag
	EventRemoved                     // removal requested from the stage
	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	"selected", "unselected", "hovered", "unhovered", "moved", "removed",
}

func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return "unknown"
}

// SelectionEvent describes a change made by the editor.
type SelectionEvent struct {
	Kind   EventKind
	Entity EntityID
	// Position is the entity position when the event fired.
	Position Vec2
}

// Notifier forwards editor events to an external system such as an ECS
// world. Set EditorHook.Notifier to install one.
type Notifier interface {
	Notify(SelectionEvent)
}

type notifyHandler struct {
	id uint32
	fn func(SelectionEvent)
}

type notifyRegistry struct {
	handlers [eventKindCount][]notifyHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *notifyRegistry
	kind EventKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.kind >= eventKindCount {
		return
	}
	s := h.reg.handlers[h.kind]
	for i := range s {
		if s[i].id == h.id {
			h.reg.handlers[h.kind] = slices.Delete(s, i, i+1)
			return
		}
	}
}

func (r *notifyRegistry) add(kind EventKind, fn func(SelectionEvent)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.handlers[kind] = append(r.handlers[kind], notifyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, kind: kind}
}

// emit calls every handler registered for ev.Kind. Handlers may remove
// themselves while being called.
func (r *notifyRegistry) emit(ev SelectionEvent) {
	hs := r.handlers[ev.Kind]
	if len(hs) == 0 {
		return
	}
	for _, h := range slices.Clone(hs) {
		h.fn(ev)
	}
}
