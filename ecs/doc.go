// Package ecs adapts a [Donburi] world to sapling's selection controller.
//
// [NewWorld] exposes every entity with a transform and an [Instance] ID as a
// sapling.World and removes entities as a sapling.Stage. [NewBridge] is a
// sapling.Notifier that keeps the [IsSelected] tag in sync and publishes
// events to [SelectionEventType].
//
// Usage:
//
//	world := ecs.NewWorld(donburi.NewWorld())
//	hook.Stage = world
//	hook.Notifier = ecs.NewBridge(world.Donburi())
//	ctrl.Update(hook, world, input, dt)
//	ecs.SelectionEventType.ProcessEvents(world.Donburi())
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
