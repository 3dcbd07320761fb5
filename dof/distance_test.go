package dof

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDistanceMapInitialised(t *testing.T) {
	m := NewDistanceMap(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, float32(DistanceLimit), m.Get(x, y))
		}
	}
}

func TestAdjustFocalPlaneDefaultsWithNoQualifyingPixels(t *testing.T) {
	m := NewDistanceMap(10, 10)
	assert.Equal(t, float32(1), m.AdjustFocalPlane())
}

func TestAdjustFocalPlaneAveragesCentralBox(t *testing.T) {
	m := NewDistanceMap(10, 10)
	for y := 4; y < 6; y++ {
		for x := 4; x < 6; x++ {
			m.Set(x, y, 3)
		}
	}
	assert.InDelta(t, 3, m.AdjustFocalPlane(), 1e-5)
}
