package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// CartesianMesh is an immutable Cartesian voxel grid descriptor. It
// maps continuous positions to voxel indices and back; it never
// clamps an index into range itself, callers are responsible for
// that.
type CartesianMesh struct {
	Dims int // 1, 2, or 3

	BoundingBoxMins mgl64.Vec3
	BoundingBoxMaxs mgl64.Vec3
	VoxelShape      mgl64.Vec3

	GridShape [3]int
}

// NewCartesianMesh derives GridShape as the ceiling of span/h per
// axis, with a 1e-9 tolerance so an exact multiple does not round up:
// for dims < 3, the unused axes get a grid shape of 1 (a single
// "slab"), not 0.
func NewCartesianMesh(dims int, mins, maxs, voxelShape mgl64.Vec3) *CartesianMesh {
	m := &CartesianMesh{
		Dims:            dims,
		BoundingBoxMins: mins,
		BoundingBoxMaxs: maxs,
		VoxelShape:      voxelShape,
		GridShape:       [3]int{1, 1, 1},
	}
	for i := 0; i < dims && i < 3; i++ {
		span := maxs[i] - mins[i]
		h := voxelShape[i]
		m.GridShape[i] = ceilDiv(span, h)
	}
	return m
}

func ceilDiv(span, h float64) int {
	if h <= 0 {
		return 1
	}
	n := int((span + h - 1e-9) / h)
	if float64(n)*h < span-1e-9 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// VoxelCount is the product of GridShape, i.e. the total voxel count.
func (m *CartesianMesh) VoxelCount() int {
	return m.GridShape[0] * m.GridShape[1] * m.GridShape[2]
}

// VoxelVolume is the product of the voxel edge lengths.
func (m *CartesianMesh) VoxelVolume() float64 {
	vol := 1.0
	for i := 0; i < m.Dims && i < 3; i++ {
		vol *= m.VoxelShape[i]
	}
	return vol
}

// VoxelPosition maps a continuous position to its containing voxel
// index, truncated per axis, with components at or beyond Dims
// forced to zero. This always returns a 3-wide index irrespective of
// Dims, so a 1D or 2D mesh's unused axes simply read as zero rather
// than producing a narrower index type.
func (m *CartesianMesh) VoxelPosition(p mgl64.Vec3) [3]int {
	var idx [3]int
	for i := 0; i < m.Dims && i < 3; i++ {
		h := m.VoxelShape[i]
		if h <= 0 {
			continue
		}
		idx[i] = int((p[i] - m.BoundingBoxMins[i]) / h)
	}
	return idx
}

// VoxelCenter returns the real-space center of the voxel at idx.
func (m *CartesianMesh) VoxelCenter(idx [3]int) mgl64.Vec3 {
	var c mgl64.Vec3
	for i := 0; i < 3; i++ {
		if i < m.Dims {
			c[i] = m.BoundingBoxMins[i] + (float64(idx[i])+0.5)*m.VoxelShape[i]
		}
	}
	return c
}

// VoxelIndex linearizes a 3D voxel coordinate using an x-fastest
// layout, so that a per-axis diffusion sweep along x walks a
// contiguous run of the backing array.
func (m *CartesianMesh) VoxelIndex(ix, iy, iz int) int {
	return ix + iy*m.GridShape[0] + iz*m.GridShape[0]*m.GridShape[1]
}
