package cellmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestMeshGridShapeCeilDivision(t *testing.T) {
	m := NewCartesianMesh(3,
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{10, 10, 10},
		mgl64.Vec3{3, 3, 3})

	assert.Equal(t, [3]int{4, 4, 4}, m.GridShape)
	assert.Equal(t, 64, m.VoxelCount())
}

func TestMeshGridShapeCollapsesUnusedAxesTo1(t *testing.T) {
	m := NewCartesianMesh(1,
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{5, 5, 5},
		mgl64.Vec3{1, 1, 1})

	assert.Equal(t, [3]int{5, 1, 1}, m.GridShape)
}

func TestMeshRoundTripWithinHalfVoxel(t *testing.T) {
	m := NewCartesianMesh(3,
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{20, 20, 20},
		mgl64.Vec3{5, 5, 5})

	points := []mgl64.Vec3{
		{0.1, 0.1, 0.1},
		{19.9, 19.9, 19.9},
		{7.5, 12.3, 3.3},
		{10, 10, 10},
	}

	for _, p := range points {
		idx := m.VoxelPosition(p)
		center := m.VoxelCenter(idx)
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, abs(center[axis]-p[axis]), m.VoxelShape[axis]/2+1e-9)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestVoxelIndexXFastest(t *testing.T) {
	m := NewCartesianMesh(3,
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{10, 10, 10},
		mgl64.Vec3{5, 5, 5})

	assert.Equal(t, 0, m.VoxelIndex(0, 0, 0))
	assert.Equal(t, 1, m.VoxelIndex(1, 0, 0))
	assert.Equal(t, 2, m.VoxelIndex(0, 1, 0))
	assert.Equal(t, 4, m.VoxelIndex(0, 0, 1))
}
