package geometry

import "github.com/mrigankad/offlinerender/math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// EmptyAABB returns a box with inverted bounds, ready to be grown by
// repeated ExtendTo calls.
func EmptyAABB() AABB {
	inf := float32(1e30)
	return AABB{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

func (b AABB) ExtendToPoint(p math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min32(b.Min.X, p.X), Y: min32(b.Min.Y, p.Y), Z: min32(b.Min.Z, p.Z)},
		Max: math.Vec3{X: max32(b.Max.X, p.X), Y: max32(b.Max.Y, p.Y), Z: max32(b.Max.Z, p.Z)},
	}
}

func (b AABB) ExtendToBox(other AABB) AABB {
	return b.ExtendToPoint(other.Min).ExtendToPoint(other.Max)
}

func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the box's space diagonal, used by the
// ray tracer to scale the ambient-occlusion sample radius.
func (b AABB) Diagonal() float32 {
	return b.Max.Sub(b.Min).Length()
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
