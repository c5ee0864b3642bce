package cellmesh

import (
	"fmt"
	"math"
)

// tridiagonalFactors holds the precomputed forward-elimination
// coefficients of a constant tridiagonal system: the matrix is
// constant, so factors are cached once at initialize and reused by
// every subsequent solve. The system is the same for every line along
// a given axis because a no-flux boundary is applied identically at
// both ends of every line, and alpha (the neighbor coupling strength)
// does not vary along the line.
type tridiagonalFactors struct {
	length int
	alpha  float64
	cPrime []float64 // forward-substitution super-diagonal terms
	mInv   []float64 // 1/pivot at each row
}

// newTridiagonalFactors factors the constant-coefficient system for a
// line of n voxels: implicit Euler diffusion-decay with a no-flux
// (zero-gradient) boundary at both ends, where alpha = D*dt/h^2 is
// the per-neighbor coupling and decayShare*dt is this axis sweep's
// portion of the total decay. Decay is divided evenly across the
// mesh's active dimensions so that after one sweep per axis the
// compounded decay approximates exp(-lambda*dt).
func newTridiagonalFactors(n int, alpha, decayShare float64) *tridiagonalFactors {
	f := &tridiagonalFactors{
		length: n,
		alpha:  alpha,
		cPrime: make([]float64, n),
		mInv:   make([]float64, n),
	}
	if n == 0 {
		return f
	}

	diagAt := func(i int) float64 {
		switch {
		case n == 1:
			return 1 + decayShare
		case i == 0 || i == n-1:
			return 1 + decayShare + alpha
		default:
			return 1 + decayShare + 2*alpha
		}
	}

	f.mInv[0] = 1 / diagAt(0)
	if n > 1 {
		f.cPrime[0] = -alpha * f.mInv[0]
	}
	for i := 1; i < n; i++ {
		m := diagAt(i) - (-alpha)*f.cPrime[i-1]
		f.mInv[i] = 1 / m
		if i < n-1 {
			f.cPrime[i] = -alpha * f.mInv[i]
		}
	}
	return f
}

// solve runs the Thomas algorithm against rhs in place.
func (f *tridiagonalFactors) solve(rhs []float64) {
	n := f.length
	if n == 0 {
		return
	}
	rhs[0] *= f.mInv[0]
	for i := 1; i < n; i++ {
		rhs[i] = (rhs[i] + f.alpha*rhs[i-1]) * f.mInv[i]
	}
	for i := n - 2; i >= 0; i-- {
		rhs[i] -= f.cPrime[i] * rhs[i+1]
	}
}

// axisLineBuffer is a reusable scratch buffer sized to the longest
// axis, avoiding an allocation per line per sweep.
type axisLineBuffer struct {
	buf []float64
}

func (b *axisLineBuffer) get(n int) []float64 {
	if cap(b.buf) < n {
		b.buf = make([]float64, n)
	}
	return b.buf[:n]
}

// ThomasDiffusionSolver implements the operator-split implicit
// finite-volume diffusion/decay solver: one Thomas sweep per active
// mesh axis per substrate per iteration, via an explicit Initialize
// step that precomputes everything the hot path needs.
type ThomasDiffusionSolver struct {
	dims    int
	dt      float64
	factors [3][]*tridiagonalFactors // factors[axis][substrate]
	scratch axisLineBuffer
}

func NewThomasDiffusionSolver(dt float64) *ThomasDiffusionSolver {
	return &ThomasDiffusionSolver{dt: dt}
}

// Initialize factors every axis/substrate tridiagonal system once.
// It must be called before any Solve, and again if diffusion
// coefficients, decay rates, dt, or the mesh change. It returns an
// error if any system has a zero or non-finite pivot.
func (d *ThomasDiffusionSolver) Initialize(grid *SubstrateGrid) error {
	m := grid.Mesh
	d.dims = m.Dims

	decaySplit := float64(m.Dims)
	if decaySplit < 1 {
		decaySplit = 1
	}

	for axis := 0; axis < 3; axis++ {
		d.factors[axis] = make([]*tridiagonalFactors, grid.SubstratesCount)
		if axis >= m.Dims {
			continue
		}
		n := m.GridShape[axis]
		h := m.VoxelShape[axis]
		for s := 0; s < grid.SubstratesCount; s++ {
			diffusionCoef := grid.DiffusionCoefficients[s]
			decayRate := grid.DecayRates[s]
			alpha := 0.0
			if h > 0 {
				alpha = diffusionCoef * d.dt / (h * h)
			}
			decayShare := decayRate * d.dt / decaySplit
			f := newTridiagonalFactors(n, alpha, decayShare)
			for _, inv := range f.mInv {
				if math.IsInf(inv, 0) || math.IsNaN(inv) {
					return fmt.Errorf("cellmesh: diffusion: singular tridiagonal system for substrate %d along axis %d", s, axis)
				}
			}
			d.factors[axis][s] = f
		}
	}
	return nil
}

// Solve advances the grid by iterations implicit diffusion-decay
// substeps, one operator-split sweep per active axis per substep.
func (d *ThomasDiffusionSolver) Solve(grid *SubstrateGrid, iterations int) error {
	m := grid.Mesh
	for iter := 0; iter < iterations; iter++ {
		for axis := 0; axis < m.Dims && axis < 3; axis++ {
			d.sweepAxis(grid, axis)
		}
	}
	return nil
}

func (d *ThomasDiffusionSolver) sweepAxis(grid *SubstrateGrid, axis int) {
	m := grid.Mesh
	n := m.GridShape[axis]
	if n <= 1 {
		return
	}

	dimA, dimB := m.GridShape[axisA(axis)], m.GridShape[axisB(axis)]

	for s := 0; s < grid.SubstratesCount; s++ {
		factors := d.factors[axis][s]
		if factors == nil {
			continue
		}
		for b := 0; b < dimB; b++ {
			for a := 0; a < dimA; a++ {
				line := d.scratch.get(n)
				for i := 0; i < n; i++ {
					x, y, z := coordsFor(axis, i, a, b)
					line[i] = *grid.GetSubstrateDensity(s, x, y, z)
				}
				factors.solve(line)
				for i := 0; i < n; i++ {
					x, y, z := coordsFor(axis, i, a, b)
					*grid.GetSubstrateDensity(s, x, y, z) = line[i]
				}
			}
		}
	}
}

// axisA and axisB are the two mesh axes orthogonal to axis; GridShape
// is already 1 along any axis beyond Dims (NewCartesianMesh), so a 1D
// or 2D mesh naturally collapses to a single line per substrate
// without any extra dims bookkeeping here.
func axisA(axis int) int { return (axis + 1) % 3 }
func axisB(axis int) int { return (axis + 2) % 3 }

// coordsFor maps a position i along axis, plus loop indices a (over
// axisA(axis)) and b (over axisB(axis)), back to an (x,y,z) voxel
// coordinate.
func coordsFor(axis, i, a, b int) (x, y, z int) {
	coord := [3]int{}
	coord[axis] = i
	coord[axisA(axis)] = a
	coord[axisB(axis)] = b
	return coord[0], coord[1], coord[2]
}

// ReinitializeDirichlet delegates to the grid.
func (d *ThomasDiffusionSolver) ReinitializeDirichlet(grid *SubstrateGrid) {
	grid.ReinitializeDirichlet()
}
