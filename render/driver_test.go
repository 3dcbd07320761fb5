package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/params"
	"github.com/mrigankad/offlinerender/scene"
)

// Every pixel of an empty scene's render is the background colour, and
// the distance map stays at its no-hit sentinel.
func TestRenderEmptySceneIsAllBackground(t *testing.T) {
	scn := scene.NewScene()
	p := params.NewStore()
	p.SetAntiAliasing(false)

	cam := NewCamera(math.Vec3{X: 0, Y: 0, Z: 3}, math.Vec3Back, math.Vec3Up, 1.2, 1)
	background := core.NewColor(17.0/255, 34.0/255, 51.0/255)

	driver := NewDriver(1)
	img, depth, err := driver.Render(context.Background(), scn, p, cam, 2, 2, background, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, img)

	for _, c := range img.Pixels {
		assert.InDelta(t, background.R, c.R, 1e-3)
		assert.InDelta(t, background.G, c.G, 1e-3)
		assert.InDelta(t, background.B, c.B, 1e-3)
	}
	for _, d := range depth.D {
		assert.Equal(t, float32(100), d)
	}
}

// A camera looking straight at a lit cube produces a non-black central
// pixel and a background corner pixel.
func TestRenderCentralPixelOfCubeIsLit(t *testing.T) {
	scn := scene.NewScene()
	cube := scene.NewObject(unitCube(), material.Default, math.Vec3Zero)
	scn.AddObject(cube)
	scn.AddLight(scene.NewLight(math.Vec3{X: 5, Y: 5, Z: 5}, math.Vec3One, 1))

	p := params.NewStore()
	p.SetAntiAliasing(false)
	p.SetShadows(false)

	cam := NewCamera(math.Vec3{X: 0, Y: 0, Z: 3}, math.Vec3Back, math.Vec3Up, 0.785, 1)
	background := core.NewColor(17.0/255, 34.0/255, 51.0/255)

	driver := NewDriver(1)
	img, _, err := driver.Render(context.Background(), scn, p, cam, 64, 64, background, nil, nil)
	require.NoError(t, err)

	center := img.At(32, 32)
	assert.Greater(t, center.R+center.G+center.B, float32(0))

	corner := img.At(0, 0)
	assert.InDelta(t, background.R, corner.R, 1e-3)
}

func TestRenderRejectsInvalidInput(t *testing.T) {
	p := params.NewStore()
	driver := NewDriver(1)
	cam := NewCamera(math.Vec3Zero, math.Vec3Back, math.Vec3Up, 1, 1)

	_, _, err := driver.Render(context.Background(), nil, p, cam, 4, 4, core.ColorBlack, nil, nil)
	assert.Error(t, err)

	_, _, err = driver.Render(context.Background(), scene.NewScene(), p, cam, 0, 4, core.ColorBlack, nil, nil)
	assert.Error(t, err)
}

func unitCube() *geometry.Mesh {
	v := func(x, y, z float32) geometry.Vertex {
		return geometry.Vertex{Position: math.Vec3{X: x, Y: y, Z: z}}
	}
	m := geometry.NewMesh()
	m.Vertices = []geometry.Vertex{
		v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5), v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
		v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5), v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
	}
	quad := func(a, b, c, d uint32) {
		m.Triangles = append(m.Triangles,
			geometry.Triangle{I0: a, I1: b, I2: c},
			geometry.Triangle{I0: a, I1: c, I2: d},
		)
	}
	quad(4, 5, 6, 7)
	quad(1, 0, 3, 2)
	quad(4, 7, 3, 0)
	quad(1, 2, 6, 5)
	quad(7, 6, 2, 3)
	quad(0, 1, 5, 4)
	m.RecomputeNormals()
	return m
}
