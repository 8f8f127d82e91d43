package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two float64 values simultaneously. Create one
// with TweenPosition or TweenZoom and call Update(dt) each frame. If the
// target entity is destroyed the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(vals [2]float64)
	target Entity
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.Destroyed() {
		g.Done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(vals)
	g.Done = allDone
}

// TweenPosition moves e to the target world position over duration seconds.
func TweenPosition(e Entity, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := e.Position()
	return &TweenGroup{
		count:  2,
		target: e,
		tweens: [2]*gween.Tween{
			gween.New(float32(from.X), float32(to.X), duration, fn),
			gween.New(float32(from.Y), float32(to.Y), duration, fn),
		},
		apply: func(v [2]float64) { e.SetPosition(Vec2{v[0], v[1]}) },
	}
}

// TweenZoom animates cam.Zoom to the target value.
func TweenZoom(cam *Camera, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{
		count:  1,
		tweens: [2]*gween.Tween{gween.New(float32(cam.Zoom), float32(to), duration, fn)},
		apply: func(v [2]float64) {
			cam.Zoom = v[0]
			cam.MarkDirty()
		},
	}
}
