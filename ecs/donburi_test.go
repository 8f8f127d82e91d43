package ecs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phanxgames/sapling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/transform"
)

func collect(w *World) []sapling.Entity {
	var out []sapling.Entity
	for e := range w.Entities() {
		out = append(out, e)
	}
	return out
}

func TestWorld_EntitiesAndPositions(t *testing.T) {
	dw := donburi.NewWorld()
	Spawn(dw, "a", sapling.Vec2{X: 10, Y: 20})
	Spawn(dw, "b", sapling.Vec2{X: -5, Y: 3})
	dw.Create(transform.Transform) // no instance, not editable

	w := NewWorld(dw)
	ents := collect(w)
	require.Len(t, ents, 2)

	got := map[string]sapling.Vec2{}
	for _, e := range ents {
		got[NameOf(e)] = e.Position()
		assert.False(t, e.HasParent())
		assert.False(t, e.Destroyed())
	}
	assert.Equal(t, sapling.Vec2{X: 10, Y: 20}, got["a"])
	assert.Equal(t, sapling.Vec2{X: -5, Y: 3}, got["b"])
}

func TestWorld_SetPosition(t *testing.T) {
	dw := donburi.NewWorld()
	entry := Spawn(dw, "a", sapling.Vec2{})
	w := NewWorld(dw)

	e, ok := w.Lookup(sapling.EntityID(entry.Entity()))
	require.True(t, ok)
	e.SetPosition(sapling.Vec2{X: 32, Y: 48})

	p := transform.WorldPosition(entry)
	assert.Equal(t, 32.0, p.X)
	assert.Equal(t, 48.0, p.Y)
}

func TestWorld_ChildHasParent(t *testing.T) {
	dw := donburi.NewWorld()
	parent := Spawn(dw, "parent", sapling.Vec2{X: 100, Y: 100})
	child := Spawn(dw, "child", sapling.Vec2{X: 110, Y: 100})
	transform.AppendChild(parent, child, true)

	w := NewWorld(dw)
	e, ok := w.Lookup(sapling.EntityID(child.Entity()))
	require.True(t, ok)
	assert.True(t, e.HasParent())
}

func TestWorld_RemoveEntity(t *testing.T) {
	dw := donburi.NewWorld()
	entry := Spawn(dw, "a", sapling.Vec2{})
	id := sapling.EntityID(entry.Entity())
	w := NewWorld(dw)

	e, ok := w.Lookup(id)
	require.True(t, ok)

	w.RemoveEntity(id)
	assert.True(t, e.Destroyed())
	_, ok = w.Lookup(id)
	assert.False(t, ok)
	assert.Empty(t, collect(w))

	// Removing twice is harmless.
	w.RemoveEntity(id)
}

func TestWorld_ByInstance(t *testing.T) {
	dw := donburi.NewWorld()
	Spawn(dw, "a", sapling.Vec2{})
	b := Spawn(dw, "b", sapling.Vec2{})
	w := NewWorld(dw)

	e, ok := w.ByInstance(*Instance.Get(b))
	require.True(t, ok)
	assert.Equal(t, "b", NameOf(e))
	assert.Equal(t, *Instance.Get(b), InstanceOf(e))

	_, ok = w.ByInstance(uuid.New())
	assert.False(t, ok)
}

func TestInstanceOf_Foreign(t *testing.T) {
	assert.Equal(t, uuid.Nil, InstanceOf(nil))
}

func TestBridge_TagsAndPublishes(t *testing.T) {
	dw := donburi.NewWorld()
	entry := Spawn(dw, "a", sapling.Vec2{X: 1, Y: 2})
	w := NewWorld(dw)

	var received []sapling.SelectionEvent
	SelectionEventType.Subscribe(dw, func(_ donburi.World, ev sapling.SelectionEvent) {
		received = append(received, ev)
	})

	hook := sapling.NewEditorHook(sapling.Vec2{X: 100, Y: 100})
	hook.Notifier = NewBridge(dw)
	hook.Stage = w

	e, _ := w.Lookup(sapling.EntityID(entry.Entity()))
	hook.SelectEntity(e, true)
	assert.True(t, entry.HasComponent(IsSelected))
	assert.Equal(t, []donburi.Entity{entry.Entity()}, Selected(dw))

	hook.UnselectEntity(e.ID())
	assert.False(t, entry.HasComponent(IsSelected))
	assert.Empty(t, Selected(dw))

	// Events are queued until processed.
	assert.Empty(t, received)
	SelectionEventType.ProcessEvents(dw)
	require.Len(t, received, 2)
	assert.Equal(t, sapling.EventSelected, received[0].Kind)
	assert.Equal(t, sapling.Vec2{X: 1, Y: 2}, received[0].Position)
	assert.Equal(t, sapling.EventUnselected, received[1].Kind)
}

func TestBridge_RemoveSelected(t *testing.T) {
	dw := donburi.NewWorld()
	entry := Spawn(dw, "a", sapling.Vec2{})
	w := NewWorld(dw)

	var kinds []sapling.EventKind
	SelectionEventType.Subscribe(dw, func(_ donburi.World, ev sapling.SelectionEvent) {
		kinds = append(kinds, ev.Kind)
	})

	hook := sapling.NewEditorHook(sapling.Vec2{X: 100, Y: 100})
	hook.Notifier = NewBridge(dw)
	hook.Stage = w

	e, _ := w.Lookup(sapling.EntityID(entry.Entity()))
	hook.SelectEntity(e, true)
	hook.RemoveSelected()

	assert.False(t, dw.Valid(entry.Entity()))
	assert.Equal(t, 0, hook.SelectedCount())

	SelectionEventType.ProcessEvents(dw)
	assert.Equal(t, []sapling.EventKind{
		sapling.EventSelected,
		sapling.EventRemoved,
		sapling.EventUnselected,
	}, kinds)
}
