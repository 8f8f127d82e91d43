// Package sapling is a 2D scene editing layer for [Ebitengine].
//
// It provides the two pieces an in-game level editor needs on top of a
// running world: a sprite quad builder with a batching renderer, and a
// selection controller that turns raw mouse and keyboard input into hover,
// selection, drag-move and marquee selection.
//
// # Sprite quads
//
// [BuildQuad] turns a sprite description into four vertices with positions,
// texture coordinates, tint and blend factors. [QuadIndices] gives the two
// triangles. [SpriteBatch] collects quads for a frame and submits them to
// ebiten with as few draw calls as the image and blend changes allow:
//
//	batch := sapling.NewSpriteBatch(sapling.SortBackToFront)
//	batch.Draw(img, sapling.QuadParams{
//		Position: sapling.Vec2{X: 100, Y: 80},
//		Size:     sapling.Vec2{X: 32, Y: 32},
//		Scale:    sapling.Vec2{X: 1, Y: 1},
//		Origin:   sapling.Vec2{X: 16, Y: 16},
//		Color:    sapling.ColorWhite,
//	})
//	batch.Flush(screen, cam)
//
// # Selection
//
// The host implements [World] (and optionally [Stage]) over its own entity
// storage; the ecs subpackage does this for donburi. Each frame:
//
//	ctrl.Update(hook, world, input, dt)
//	ctrl.Draw(hook, world, sapling.NewEbitenRenderer(screen, hook.Camera))
//
// [EditorHook] owns the hover and selection sets and fires [SelectionEvent]
// notifications. [Controller] reads [Input], which is either live
// ([EbitenInput]) or recorded ([ScriptedInput], [LoadInputScript]).
// Recorded scripts can request frame captures, written by [Screenshots].
//
// [Groups] keeps named folders of entity instances and persists them as
// YAML.
//
// # Settings
//
// [Settings] holds the tuning values, colors and input bindings. They load
// from YAML with [LoadSettings] and can be reloaded live with
// [WatchSettings].
//
// # Logging
//
// sapling logs through log/slog and is silent by default. See [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
package sapling
