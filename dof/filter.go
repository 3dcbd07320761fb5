package dof

import (
	stdmath "math"

	"github.com/mrigankad/offlinerender/core"
)

// HalfWindow is the base half-window of the blur kernel (side 2*HW+1 =
// 9 at full blur strength).
const HalfWindow = 4

// regEpsilon regularises the guided-filter regression:
// a = (mean(G*I) - mu*nu) / (sigma^2_G + regEpsilon).
const regEpsilon = 0.001

// integral is a summed-area table over a width x height grid of
// float64 values, letting any axis-aligned box sum be answered in O(1)
// regardless of box size, which is what makes a per-pixel variable
// window affordable.
type integral struct {
	width, height int
	sum           []float64 // (width+1) x (height+1), sum[y][x] = sum of [0,x) x [0,y)
}

func newIntegral(width, height int, values []float64) *integral {
	ig := &integral{width: width, height: height, sum: make([]float64, (width+1)*(height+1))}
	stride := width + 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			above := ig.sum[y*stride+(x+1)]
			left := ig.sum[(y+1)*stride+x]
			aboveLeft := ig.sum[y*stride+x]
			ig.sum[(y+1)*stride+(x+1)] = above + left - aboveLeft + values[y*width+x]
		}
	}
	return ig
}

// boxSum returns the sum of values over [x0,x1) x [y0,y1), clamped to
// the grid's bounds.
func (ig *integral) boxSum(x0, y0, x1, y1 int) float64 {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > ig.width {
		x1 = ig.width
	}
	if y1 > ig.height {
		y1 = ig.height
	}
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	stride := ig.width + 1
	return ig.sum[y1*stride+x1] - ig.sum[y0*stride+x1] - ig.sum[y1*stride+x0] + ig.sum[y0*stride+x0]
}

func (ig *integral) area(x0, y0, x1, y1 int) int {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > ig.width {
		x1 = ig.width
	}
	if y1 > ig.height {
		y1 = ig.height
	}
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	return (x1 - x0) * (y1 - y0)
}

// guidance computes G[x,y] = exp(-(d[x,y]-focal)^2 / sigma) for every
// pixel.
func guidance(depth *DistanceMap, focal, sigma float32) []float64 {
	g := make([]float64, depth.Width*depth.Height)
	if sigma == 0 {
		sigma = 1e-6
	}
	for i, d := range depth.D {
		diff := float64(d - focal)
		g[i] = stdmath.Exp(-(diff * diff) / float64(sigma))
	}
	return g
}

// halfWindowAt returns the effective per-pixel half-window: in-focus
// pixels (G close to 1) shrink toward zero blur, out-of-focus pixels
// (G close to 0) receive the full HalfWindow kernel.
func halfWindowAt(g float64) int {
	hw := int(stdmath.Round(HalfWindow * (1 - g)))
	if hw < 0 {
		hw = 0
	}
	return hw
}

// Filter applies the depth-of-field guided filter to pixels (a
// width x height grid of linear-RGB colour in [0,1]) using depth and
// the auto-detected focal plane, with DoF strength sigma. Per channel
// it regresses the output against the guidance inside each pixel's
// variable window, box-filters the coefficients, and clamps the result
// to [0,1].
func Filter(pixels []core.Color, width, height int, depth *DistanceMap, focal, sigma float32) []core.Color {
	g := guidance(depth, focal, sigma)
	gInt := newIntegral(width, height, g)
	g2 := make([]float64, len(g))
	for i, v := range g {
		g2[i] = v * v
	}
	g2Int := newIntegral(width, height, g2)

	out := make([]core.Color, width*height)

	for _, extract := range []struct {
		get func(core.Color) float32
		set func(*core.Color, float32)
	}{
		{func(c core.Color) float32 { return c.R }, func(c *core.Color, v float32) { c.R = v }},
		{func(c core.Color) float32 { return c.G }, func(c *core.Color, v float32) { c.G = v }},
		{func(c core.Color) float32 { return c.B }, func(c *core.Color, v float32) { c.B = v }},
	} {
		channel := make([]float64, width*height)
		gChannel := make([]float64, width*height)
		for i, c := range pixels {
			channel[i] = float64(extract.get(c))
			gChannel[i] = g[i] * channel[i]
		}
		iInt := newIntegral(width, height, channel)
		giInt := newIntegral(width, height, gChannel)

		a := make([]float64, width*height)
		b := make([]float64, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				idx := y*width + x
				hw := halfWindowAt(g[idx])
				x0, y0, x1, y1 := x-hw, y-hw, x+hw+1, y+hw+1
				area := float64(gInt.area(x0, y0, x1, y1))
				if area == 0 {
					area = 1
				}
				mu := gInt.boxSum(x0, y0, x1, y1) / area
				nu := iInt.boxSum(x0, y0, x1, y1) / area
				meanGI := giInt.boxSum(x0, y0, x1, y1) / area
				meanG2 := g2Int.boxSum(x0, y0, x1, y1) / area
				varG := meanG2 - mu*mu

				coefA := (meanGI - mu*nu) / (varG + regEpsilon)
				a[idx] = coefA
				b[idx] = nu - coefA*mu
			}
		}

		aInt := newIntegral(width, height, a)
		bInt := newIntegral(width, height, b)

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				idx := y*width + x
				hw := halfWindowAt(g[idx])
				x0, y0, x1, y1 := x-hw, y-hw, x+hw+1, y+hw+1
				area := float64(aInt.area(x0, y0, x1, y1))
				if area == 0 {
					area = 1
				}
				aBar := aInt.boxSum(x0, y0, x1, y1) / area
				bBar := bInt.boxSum(x0, y0, x1, y1) / area
				value := aBar*g[idx] + bBar
				value = clamp01(value)

				c := out[idx]
				extract.set(&c, float32(value))
				out[idx] = c
			}
		}
	}

	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
