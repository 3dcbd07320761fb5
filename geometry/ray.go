package geometry

import "github.com/mrigankad/offlinerender/math"

// Ray is a half-line Origin + t*Direction, t >= 0.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
