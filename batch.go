package sapling

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// SortMode controls the order in which a SpriteBatch submits its quads.
type SortMode uint8

const (
	// SortDeferred keeps submission order.
	SortDeferred SortMode = iota
	// SortBackToFront draws larger Depth values first. Equal depths keep
	// submission order.
	SortBackToFront
)

// TriangleTarget receives batched geometry. *ebiten.Image implements it.
type TriangleTarget interface {
	DrawTriangles32(vertices []ebiten.Vertex, indices []uint32, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// batchKey groups quads that can be submitted in a single draw call.
type batchKey struct {
	image *ebiten.Image
	blend BlendMode
}

type batchItem struct {
	key  batchKey
	quad Quad
}

// BatchStats reports the work done by the last Flush.
type BatchStats struct {
	Quads     int
	Culled    int
	DrawCalls int
}

// SpriteBatch collects quads during a frame and submits consecutive quads
// sharing an image and blend mode as one DrawTriangles32 call.
type SpriteBatch struct {
	Sort  SortMode
	Blend BlendMode

	items []batchItem
	verts []ebiten.Vertex
	inds  []uint32
	stats BatchStats
}

// NewSpriteBatch returns an empty batch using the given sort mode.
func NewSpriteBatch(sort SortMode) *SpriteBatch {
	return &SpriteBatch{Sort: sort}
}

// Draw builds a quad for img and queues it. Texture coordinates are relative
// to img, so sub-images work as textures.
func (b *SpriteBatch) Draw(img *ebiten.Image, p QuadParams) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	b.DrawQuad(img, BuildQuad(float64(bounds.Dx()), float64(bounds.Dy()), p))
}

// DrawQuad queues a prebuilt quad sampling img.
func (b *SpriteBatch) DrawQuad(img *ebiten.Image, q Quad) {
	if img == nil {
		return
	}
	b.items = append(b.items, batchItem{key: batchKey{image: img, blend: b.Blend}, quad: q})
}

// Len returns the number of queued quads.
func (b *SpriteBatch) Len() int {
	return len(b.items)
}

// Stats returns the counters recorded by the last Flush.
func (b *SpriteBatch) Stats() BatchStats {
	return b.stats
}

// Reset drops every queued quad without drawing.
func (b *SpriteBatch) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}

// Flush submits every queued quad to target and empties the batch. When cam
// is non-nil, positions are mapped through its view and quads outside its
// visible bounds are skipped.
func (b *SpriteBatch) Flush(target TriangleTarget, cam *Camera) {
	b.stats = BatchStats{}
	if cam != nil && len(b.items) > 0 {
		visible := cam.VisibleBounds()
		n := len(b.items)
		b.items = slices.DeleteFunc(b.items, func(it batchItem) bool {
			return !it.quad.Bounds().Intersects(visible)
		})
		b.stats.Culled = n - len(b.items)
	}
	b.stats.Quads = len(b.items)
	if len(b.items) == 0 {
		return
	}

	if b.Sort == SortBackToFront {
		slices.SortStableFunc(b.items, func(x, y batchItem) int {
			return cmp.Compare(y.quad[0].Position.Z, x.quad[0].Position.Z)
		})
	}

	view := identityTransform
	if cam != nil {
		view = cam.computeViewMatrix()
	}

	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	current := b.items[0].key
	for i := range b.items {
		it := &b.items[i]
		if it.key != current {
			b.flush(target, current)
			current = it.key
		}
		b.appendQuad(it.key.image, &it.quad, view)
	}
	b.flush(target, current)

	Logger().Debug("batch flushed", "quads", b.stats.Quads, "culled", b.stats.Culled, "draw_calls", b.stats.DrawCalls)
	b.Reset()
}

// appendQuad appends 4 vertices and 6 indices for q.
func (b *SpriteBatch) appendQuad(img *ebiten.Image, q *Quad, view [6]float64) {
	bounds := img.Bounds()
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	base := uint32(len(b.verts))
	for i := range q {
		v := &q[i]
		dx, dy := transformPoint(view, v.Position.X, v.Position.Y)

		// Premultiplied RGBA. Zero-color sentinel → opaque white.
		var cr, cg, cb, ca float32
		ca = float32(v.Color.A)
		if ca == 0 && v.Color.R == 0 && v.Color.G == 0 && v.Color.B == 0 {
			cr, cg, cb, ca = 1, 1, 1, 1
		} else {
			cr = float32(v.Color.R) * ca
			cg = float32(v.Color.G) * ca
			cb = float32(v.Color.B) * ca
		}

		b.verts = append(b.verts, ebiten.Vertex{
			DstX:    float32(dx),
			DstY:    float32(dy),
			SrcX:    float32(ox + v.TexCoord.X*w),
			SrcY:    float32(oy + v.TexCoord.Y*h),
			ColorR:  cr,
			ColorG:  cg,
			ColorB:  cb,
			ColorA:  ca,
			Custom0: float32(v.Blend.X),
			Custom1: float32(v.Blend.Y),
			Custom2: float32(v.Blend.Z),
		})
	}
	for _, idx := range QuadIndices {
		b.inds = append(b.inds, base+idx)
	}
}

// flush submits accumulated vertices as a single DrawTriangles32 call.
func (b *SpriteBatch) flush(target TriangleTarget, key batchKey) {
	if len(b.verts) == 0 {
		return
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = key.blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	target.DrawTriangles32(b.verts, b.inds, key.image, &triOp)
	b.stats.DrawCalls++

	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}
