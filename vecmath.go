package sapling

import "math"

// LerpSnap interpolates from origin toward target by factor and snaps to
// target once the remaining distance on an axis is below threshold.
func LerpSnap(origin, target Vec2, factor, threshold float64) Vec2 {
	return Vec2{
		X: lerpSnap(origin.X, target.X, factor, threshold),
		Y: lerpSnap(origin.Y, target.Y, factor, threshold),
	}
}

func lerpSnap(origin, target, factor, threshold float64) float64 {
	v := origin + (target-origin)*factor
	if math.Abs(v-target) < threshold {
		return target
	}
	return v
}

// Angle returns the signed internal angle at a of the triangle abc, in
// radians.
func Angle(a, b, c Vec2) float64 {
	v1 := b.Sub(a)
	v2 := c.Sub(a)
	cross := v1.X*v2.Y - v1.Y*v2.X
	return math.Atan2(cross, v1.Dot(v2))
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// Deviation maps the angle between two directions onto [0, 1]: 0 for the
// same direction, 1 for opposite directions.
func Deviation(a, b Vec2) float64 {
	dot := a.Normalized().Dot(b.Normalized())
	return 1 - (dot+1)/2
}

// snapDelta quantizes d to whole multiples of cell on each axis.
// A non-positive cell leaves d unchanged.
func snapDelta(d Vec2, cell float64) Vec2 {
	if cell <= 0 {
		return d
	}
	return Vec2{
		X: math.Round(d.X/cell) * cell,
		Y: math.Round(d.Y/cell) * cell,
	}
}
