// Package dof implements the depth-of-field post-filter: a per-pixel
// distance map recorded by the render driver, and a variable-radius
// adaptation of the guided image filter (He et al.) that blurs each
// pixel by a kernel whose size depends on its depth relative to an
// auto-detected focal plane.
package dof

// DistanceLimit is the "no hit recorded" sentinel a distance map is
// filled with before any pixel is written.
const DistanceLimit = 100

// DistanceMap is a width x height grid of camera-to-first-hit
// distances, initialised to DistanceLimit.
type DistanceMap struct {
	Width, Height int
	D             []float32
}

// NewDistanceMap allocates a distance map pre-filled with
// DistanceLimit.
func NewDistanceMap(width, height int) *DistanceMap {
	d := make([]float32, width*height)
	for i := range d {
		d[i] = DistanceLimit
	}
	return &DistanceMap{Width: width, Height: height, D: d}
}

func (m *DistanceMap) index(x, y int) int { return y*m.Width + x }

// Set records the camera-to-first-hit distance at (x,y).
func (m *DistanceMap) Set(x, y int, dist float32) { m.D[m.index(x, y)] = dist }

// Get returns the recorded distance at (x,y).
func (m *DistanceMap) Get(x, y int) float32 { return m.D[m.index(x, y)] }

// AdjustFocalPlane returns the average depth over the central 10% box
// of the image, ignoring pixels at or beyond DistanceLimit; if no
// pixel in that box qualifies, the focal plane defaults to 1.
func (m *DistanceMap) AdjustFocalPlane() float32 {
	x0 := int(0.45 * float32(m.Width))
	x1 := int(0.55 * float32(m.Width))
	y0 := int(0.45 * float32(m.Height))
	y1 := int(0.55 * float32(m.Height))

	var sum float32
	var count int
	for y := y0; y < y1 && y < m.Height; y++ {
		for x := x0; x < x1 && x < m.Width; x++ {
			d := m.Get(x, y)
			if d >= DistanceLimit {
				continue
			}
			sum += d
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return sum / float32(count)
}
