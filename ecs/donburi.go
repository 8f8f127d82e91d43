package ecs

import (
	"iter"

	"github.com/google/uuid"
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

// Instance is the stable identity of an editable entity. It survives save
// and load, unlike the donburi entity handle.
var Instance = donburi.NewComponentType[uuid.UUID]()

// Name is a display name shown in editor lists.
var Name = donburi.NewComponentType[string]()

// IsSelected tags entities that are currently selected in the editor.
var IsSelected = donburi.NewTag()

// SelectionEventType carries editor selection events into the world.
// Subscribe to it in your systems and drain it with ProcessEvents.
var SelectionEventType = events.NewEventType[sapling.SelectionEvent]()

// Spawn creates an editable entity at pos with a fresh instance ID.
func Spawn(w donburi.World, name string, pos sapling.Vec2) *donburi.Entry {
	entry := w.Entry(w.Create(transform.Transform, Instance, Name))
	Instance.SetValue(entry, uuid.New())
	Name.SetValue(entry, name)
	transform.SetWorldPosition(entry, dmath.NewVec2(pos.X, pos.Y))
	return entry
}

// World exposes every entity with a transform and an instance ID to the
// selection controller. It also implements sapling.Stage.
type World struct {
	world donburi.World
	query *donburi.Query
}

// NewWorld wraps w.
func NewWorld(w donburi.World) *World {
	return &World{
		world: w,
		query: donburi.NewQuery(filter.Contains(transform.Transform, Instance)),
	}
}

// Donburi returns the wrapped world.
func (w *World) Donburi() donburi.World {
	return w.world
}

// Entities yields editable entities in query order. The set is captured
// before yielding, so callers may add or remove components while ranging.
func (w *World) Entities() iter.Seq[sapling.Entity] {
	var handles []donburi.Entity
	w.query.Each(w.world, func(entry *donburi.Entry) {
		handles = append(handles, entry.Entity())
	})
	return func(yield func(sapling.Entity) bool) {
		for _, h := range handles {
			if !yield(&entity{world: w.world, handle: h}) {
				return
			}
		}
	}
}

// Lookup returns the entity for id when it is still alive.
func (w *World) Lookup(id sapling.EntityID) (sapling.Entity, bool) {
	h := donburi.Entity(id)
	if !w.world.Valid(h) {
		return nil, false
	}
	if !w.world.Entry(h).HasComponent(Instance) {
		return nil, false
	}
	return &entity{world: w.world, handle: h}, true
}

// ByInstance finds the entity carrying the given instance ID.
func (w *World) ByInstance(id uuid.UUID) (sapling.Entity, bool) {
	var found sapling.Entity
	w.query.Each(w.world, func(entry *donburi.Entry) {
		if found == nil && *Instance.Get(entry) == id {
			found = &entity{world: w.world, handle: entry.Entity()}
		}
	})
	return found, found != nil
}

// RemoveEntity removes id and its transform children from the world.
func (w *World) RemoveEntity(id sapling.EntityID) {
	h := donburi.Entity(id)
	if !w.world.Valid(h) {
		return
	}
	transform.RemoveRecursive(w.world.Entry(h))
}

// InstanceOf returns the instance ID of e, or uuid.Nil when e is not a
// donburi entity or is gone.
func InstanceOf(e sapling.Entity) uuid.UUID {
	de, ok := e.(*entity)
	if !ok || e.Destroyed() {
		return uuid.Nil
	}
	return *Instance.Get(de.entry())
}

// NameOf returns the display name of e.
func NameOf(e sapling.Entity) string {
	de, ok := e.(*entity)
	if !ok || e.Destroyed() {
		return ""
	}
	entry := de.entry()
	if !entry.HasComponent(Name) {
		return ""
	}
	return *Name.Get(entry)
}

// entity adapts a donburi entity handle to sapling.Entity.
type entity struct {
	world  donburi.World
	handle donburi.Entity
}

func (e *entity) entry() *donburi.Entry {
	return e.world.Entry(e.handle)
}

func (e *entity) ID() sapling.EntityID {
	return sapling.EntityID(e.handle)
}

func (e *entity) Position() sapling.Vec2 {
	if e.Destroyed() {
		return sapling.Vec2{}
	}
	p := transform.WorldPosition(e.entry())
	return sapling.Vec2{X: p.X, Y: p.Y}
}

func (e *entity) SetPosition(p sapling.Vec2) {
	if e.Destroyed() {
		return
	}
	transform.SetWorldPosition(e.entry(), dmath.NewVec2(p.X, p.Y))
}

func (e *entity) HasParent() bool {
	if e.Destroyed() {
		return false
	}
	_, ok := transform.GetParent(e.entry())
	return ok
}

func (e *entity) Destroyed() bool {
	return !e.world.Valid(e.handle)
}
