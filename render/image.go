package render

import "github.com/mrigankad/offlinerender/core"

// Image is a rectangular grid of linear-radiance colour samples,
// row-major, one core.Color per pixel. The driver allocates one per
// anti-aliasing offset and a final averaged one returned to a caller.
type Image struct {
	Width, Height int
	Pixels        []core.Color
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]core.Color, width*height)}
}

func (im *Image) index(x, y int) int { return y*im.Width + x }

func (im *Image) At(x, y int) core.Color { return im.Pixels[im.index(x, y)] }

func (im *Image) Set(x, y int, c core.Color) { im.Pixels[im.index(x, y)] = c }

// Clone returns an independent copy of im.
func (im *Image) Clone() *Image {
	cp := &Image{Width: im.Width, Height: im.Height, Pixels: make([]core.Color, len(im.Pixels))}
	copy(cp.Pixels, im.Pixels)
	return cp
}

// ToRGBA8 flattens the image into packed 8-bit RGBA bytes (alpha
// always 255), the shape a host layer needs to hand to image/png or
// any other serializer. Persistence itself is the host's job.
func (im *Image) ToRGBA8() []byte {
	out := make([]byte, len(im.Pixels)*4)
	for i, c := range im.Pixels {
		r, g, b := c.Clamp01().ToRGB8()
		out[i*4+0] = r
		out[i*4+1] = g
		out[i*4+2] = b
		out[i*4+3] = 255
	}
	return out
}
