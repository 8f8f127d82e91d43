package sapling

import "math"

// Vertex is one corner of a textured quad.
type Vertex struct {
	// Position is the placement in world space; Z carries the layer depth.
	Position Vec3
	// Color is the tint, not premultiplied.
	Color Color
	// TexCoord is the normalized [0, 1] texture coordinate.
	TexCoord Vec2
	// Blend is the per-vertex color blend factor forwarded to the shader.
	Blend Vec3
}

// Quad holds four vertices in a fixed order: top-left, top-right,
// bottom-right, bottom-left. Flipping only ever swaps texture coordinates.
type Quad [4]Vertex

// QuadIndices triangulates a Quad into two triangles.
var QuadIndices = [6]uint32{3, 0, 2, 2, 0, 1}

// ImageFlip selects texture mirroring. Values can be combined.
type ImageFlip uint8

const (
	FlipNone       ImageFlip = 0
	FlipHorizontal ImageFlip = 1 << 0
	FlipVertical   ImageFlip = 1 << 1
	FlipBoth                 = FlipHorizontal | FlipVertical
)

// QuadParams describes a single sprite draw.
type QuadParams struct {
	// Position is where the origin (pivot) lands in world space.
	Position Vec2
	// Size is the destination size before Scale.
	Size Vec2
	// Source is the texel rectangle to sample. Nil samples the whole texture.
	Source *Rect
	// Rotation in radians around the origin.
	Rotation float64
	// Scale multiplies the corner offsets. The zero value collapses the quad.
	Scale Vec2
	Flip  ImageFlip
	Color Color
	// Origin is the pivot, in destination units, measured from the top-left.
	Origin Vec2
	Blend  Vec3
	Depth  float64
}

// BuildQuad computes the four vertices for a sprite drawn from a texture of
// size texW x texH. Texture dimensions must be positive; zero yields NaN or
// infinite texture coordinates.
func BuildQuad(texW, texH float64, p QuadParams) Quad {
	src := Rect{Width: texW, Height: texH}
	if p.Source != nil {
		src = *p.Source
	}

	corners := [4]Vec2{
		{-p.Origin.X * p.Scale.X, -p.Origin.Y * p.Scale.Y},
		{(p.Size.X - p.Origin.X) * p.Scale.X, -p.Origin.Y * p.Scale.Y},
		{(p.Size.X - p.Origin.X) * p.Scale.X, (p.Size.Y - p.Origin.Y) * p.Scale.Y},
		{-p.Origin.X * p.Scale.X, (p.Size.Y - p.Origin.Y) * p.Scale.Y},
	}
	if p.Rotation != 0 {
		sin, cos := math.Sincos(p.Rotation)
		for i, c := range corners {
			corners[i] = Vec2{c.X*cos - c.Y*sin, c.X*sin + c.Y*cos}
		}
	}

	left, top := src.X/texW, src.Y/texH
	right, bottom := (src.X+src.Width)/texW, (src.Y+src.Height)/texH
	uvs := [4]Vec2{{left, top}, {right, top}, {right, bottom}, {left, bottom}}

	var q Quad
	for i := range q {
		q[i] = Vertex{
			Position: Vec3{p.Position.X + corners[i].X, p.Position.Y + corners[i].Y, p.Depth},
			Color:    p.Color,
			TexCoord: uvs[i],
			Blend:    p.Blend,
		}
	}
	if p.Flip&FlipHorizontal != 0 {
		q.FlipHorizontal()
	}
	if p.Flip&FlipVertical != 0 {
		q.FlipVertical()
	}
	return q
}

// FlipHorizontal mirrors the sampled texture left to right.
func (q *Quad) FlipHorizontal() {
	q[0].TexCoord, q[1].TexCoord = q[1].TexCoord, q[0].TexCoord
	q[2].TexCoord, q[3].TexCoord = q[3].TexCoord, q[2].TexCoord
}

// FlipVertical mirrors the sampled texture top to bottom.
func (q *Quad) FlipVertical() {
	q[1].TexCoord, q[2].TexCoord = q[2].TexCoord, q[1].TexCoord
	q[0].TexCoord, q[3].TexCoord = q[3].TexCoord, q[0].TexCoord
}

// Bounds returns the axis-aligned box around the quad's positions.
func (q *Quad) Bounds() Rect {
	minX, minY := q[0].Position.X, q[0].Position.Y
	maxX, maxY := minX, minY
	for i := 1; i < 4; i++ {
		p := q[i].Position
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
