package kdtree

import "github.com/mrigankad/offlinerender/math"

// Plane is one of the three axis-aligned splitting planes. The set is
// small and fixed, so the three instances are package-level singletons.
type Plane struct {
	name   string
	Normal math.Vec3
	axis   int
}

var (
	PlaneX = Plane{name: "X", Normal: math.Vec3Right, axis: 0}
	PlaneY = Plane{name: "Y", Normal: math.Vec3Up, axis: 1}
	PlaneZ = Plane{name: "Z", Normal: math.Vec3Front, axis: 2}
)

func (p Plane) String() string { return p.name }

// NextPlane returns the plane's successor in the cyclic order
// X -> Y -> Z -> X. The rotation is fixed, not adaptive: replacing it
// with a median or SAH split would change query tie-break ordering.
func (p Plane) NextPlane() Plane {
	switch p.axis {
	case 0:
		return PlaneY
	case 1:
		return PlaneZ
	default:
		return PlaneX
	}
}

func (p Plane) component(v math.Vec3) float32 {
	switch p.axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
