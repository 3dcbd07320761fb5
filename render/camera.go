package render

import "github.com/mrigankad/offlinerender/math"

// Camera is a pinhole camera: a position plus an orthonormal
// forward/up/right basis, the half-angle of the vertical field of view
// in radians, and the aspect ratio the render driver multiplies into
// the horizontal extent of the primary-ray fan.
type Camera struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	FOV      float32
	Aspect   float32
}

// NewCamera builds a camera from a position and a forward/up pair,
// deriving Right as forward x up (re-orthogonalised) so a caller only
// has to supply two basis vectors.
func NewCamera(position, forward, up math.Vec3, fov, aspect float32) Camera {
	forward = forward.Normalize()
	right := forward.Cross(up).Normalize()
	up = right.Cross(forward).Normalize()
	return Camera{Position: position, Forward: forward, Up: up, Right: right, FOV: fov, Aspect: aspect}
}
