package ecs

import (
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Bridge forwards editor notifications into a donburi world. It keeps the
// IsSelected tag in sync and publishes every event to SelectionEventType.
type Bridge struct {
	world donburi.World
}

// NewBridge returns a notifier for w. Assign it to EditorHook.Notifier.
func NewBridge(w donburi.World) *Bridge {
	return &Bridge{world: w}
}

// Notify implements sapling.Notifier.
func (b *Bridge) Notify(ev sapling.SelectionEvent) {
	h := donburi.Entity(ev.Entity)
	if b.world.Valid(h) {
		entry := b.world.Entry(h)
		switch ev.Kind {
		case sapling.EventSelected:
			if !entry.HasComponent(IsSelected) {
				entry.AddComponent(IsSelected)
			}
		case sapling.EventUnselected:
			if entry.HasComponent(IsSelected) {
				entry.RemoveComponent(IsSelected)
			}
		}
	}
	SelectionEventType.Publish(b.world, ev)
}

// Selected returns every entity carrying the IsSelected tag.
func Selected(w donburi.World) []donburi.Entity {
	var out []donburi.Entity
	donburi.NewQuery(filter.Contains(IsSelected)).Each(w, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}
