package sapling

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws editor overlays in world space.
type Renderer interface {
	DrawRect(r Rect, c Color)
	DrawRectOutline(r Rect, c Color)
	DrawCircle(center Vec2, radius float64, c Color)
}

// EbitenRenderer draws overlays onto an ebiten image with the vector
// package. Shapes are mapped through Camera when set; sizes stay in screen
// pixels for circles and stroke widths.
type EbitenRenderer struct {
	Target      *ebiten.Image
	Camera      *Camera
	StrokeWidth float32
	AntiAlias   bool
}

// NewEbitenRenderer returns a renderer for target with a one-pixel stroke.
func NewEbitenRenderer(target *ebiten.Image, cam *Camera) *EbitenRenderer {
	return &EbitenRenderer{Target: target, Camera: cam, StrokeWidth: 1}
}

// screenRect maps a world rect to the screen-space box around it.
func (r *EbitenRenderer) screenRect(rect Rect) (x, y, w, h float32) {
	if r.Camera == nil {
		return float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height)
	}
	x0, y0 := r.Camera.WorldToScreen(rect.X, rect.Y)
	x1, y1 := r.Camera.WorldToScreen(rect.X+rect.Width, rect.Y+rect.Height)
	return float32(math.Min(x0, x1)), float32(math.Min(y0, y1)),
		float32(math.Abs(x1 - x0)), float32(math.Abs(y1 - y0))
}

func (r *EbitenRenderer) DrawRect(rect Rect, c Color) {
	if r.Target == nil {
		return
	}
	x, y, w, h := r.screenRect(rect)
	vector.FillRect(r.Target, x, y, w, h, c.toRGBA(), r.AntiAlias)
}

func (r *EbitenRenderer) DrawRectOutline(rect Rect, c Color) {
	if r.Target == nil {
		return
	}
	x, y, w, h := r.screenRect(rect)
	vector.StrokeRect(r.Target, x, y, w, h, r.StrokeWidth, c.toRGBA(), r.AntiAlias)
}

func (r *EbitenRenderer) DrawCircle(center Vec2, radius float64, c Color) {
	if r.Target == nil {
		return
	}
	x, y := center.X, center.Y
	if r.Camera != nil {
		x, y = r.Camera.WorldToScreen(x, y)
	}
	vector.FillCircle(r.Target, float32(x), float32(y), float32(radius), c.toRGBA(), true)
}
