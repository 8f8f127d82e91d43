package sapling

import "iter"

// Entity is the editor's view of a host entity.
type Entity interface {
	ID() EntityID
	// Position is the entity origin in world space.
	Position() Vec2
	SetPosition(Vec2)
	// HasParent reports whether the entity is a child in a hierarchy.
	HasParent() bool
	// Destroyed reports whether the host has removed the entity.
	Destroyed() bool
}

// World exposes the entities the editor may hit-test.
type World interface {
	// Entities yields candidates in draw order. The sequence may be lazy.
	Entities() iter.Seq[Entity]
	Lookup(id EntityID) (Entity, bool)
}

// Stage accepts removal requests. Completion may be deferred.
type Stage interface {
	RemoveEntity(id EntityID)
}
