// Package math provides the single-precision vector type the rest of the
// renderer builds on. It is deliberately small: no matrices, no
// quaternions. The renderer's camera and object placement are expressed
// directly in terms of basis vectors and additive translation (see
// scene.Object), so there is nothing here to support a scene graph.
package math

import "math"

type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3One   = Vec3{1, 1, 1}
	Vec3Up    = Vec3{0, 1, 0}
	Vec3Down  = Vec3{0, -1, 0}
	Vec3Right = Vec3{1, 0, 0}
	Vec3Left  = Vec3{-1, 0, 0}
	Vec3Front = Vec3{0, 0, 1}
	Vec3Back  = Vec3{0, 0, -1}
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Abs32 is the float32 analogue of math.Abs, used throughout the
// renderer to avoid repeated float64 round-trips for a single comparison.
func Abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) Mul(scalar float32) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

func (v Vec3) Div(scalar float32) Vec3 {
	return v.Mul(1.0 / scalar)
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

func (v Vec3) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length > 0 {
		return v.Mul(1.0 / length)
	}
	return v
}

// NormalizeGetLength behaves like Normalize but also hands back the
// original length, so callers that need both don't pay for Length twice.
func (v Vec3) NormalizeGetLength() (Vec3, float32) {
	length := v.Length()
	if length > 0 {
		return v.Mul(1.0 / length), length
	}
	return v, 0
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.Add(other.Sub(v).Mul(t))
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Project returns the component of v that lies along onto (onto need not
// be unit length).
func (v Vec3) Project(onto Vec3) Vec3 {
	denom := onto.LengthSqr()
	if denom == 0 {
		return Vec3Zero
	}
	return onto.Mul(v.Dot(onto) / denom)
}

// ToPolar converts a direction to (azimuth, inclination) in radians:
// azimuth around Y in [-pi, pi], inclination from the Y axis in [0, pi].
func (v Vec3) ToPolar() (azimuth, inclination float32) {
	length := v.Length()
	if length == 0 {
		return 0, 0
	}
	azimuth = float32(math.Atan2(float64(v.Z), float64(v.X)))
	inclination = float32(math.Acos(float64(v.Y / length)))
	return azimuth, inclination
}

// FromPolar builds a unit vector from an azimuth/inclination pair, the
// inverse of ToPolar.
func FromPolar(azimuth, inclination float32) Vec3 {
	sinIncl := float32(math.Sin(float64(inclination)))
	return Vec3{
		X: sinIncl * float32(math.Cos(float64(azimuth))),
		Y: float32(math.Cos(float64(inclination))),
		Z: sinIncl * float32(math.Sin(float64(azimuth))),
	}
}

// OrthonormalBasis builds two unit vectors (x, y) perpendicular to each
// other and to n (which must already be unit length), so that (x, y, n)
// forms a right-handed frame. The helper axis a is chosen as the
// coordinate axis along which n has its smallest component, so the
// cross product below never degenerates (n is never near-parallel to a).
func (n Vec3) OrthonormalBasis() (x, y Vec3) {
	ax, ay, az := math.Abs(float64(n.X)), math.Abs(float64(n.Y)), math.Abs(float64(n.Z))
	a := Vec3Right
	switch {
	case ax <= ay && ax <= az:
		a = Vec3Right
	case ay <= ax && ay <= az:
		a = Vec3Up
	default:
		a = Vec3Front
	}
	x = n.Cross(a).Normalize()
	y = n.Cross(x)
	return x, y
}
