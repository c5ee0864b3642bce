package cellmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// TestBulkSourceScenario checks a single disturbed voxel follows the
// solver's update formula exactly, while every untouched voxel of
// either substrate is left bit-for-bit alone, since Formula returns
// (0,0,0) (a no-op) for them.
func TestBulkSourceScenario(t *testing.T) {
	mesh := NewCartesianMesh(3, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 5, 5}, mgl64.Vec3{1, 1, 1})
	grid := NewSubstrateGrid(mesh, 2)
	grid.InitialConditions[0] = 10
	grid.InitialConditions[1] = 1
	grid.FillInitialConditions()

	dt := 0.01
	solver := NewBulkSourceSolver(dt)
	solver.Formula = func(substrate, x, y, z int) (supply, target, uptake float64) {
		if substrate == 0 && x == 1 && y == 1 && z == 1 {
			return 5, 6, 7
		}
		return 0, 0, 0
	}
	solver.Solve(grid)

	assert.InDelta(t, 9.19643, *grid.GetSubstrateDensity(0, 1, 1, 1), 1e-4)

	for z := 0; z < 5; z++ {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				assert.Equal(t, 1.0, *grid.GetSubstrateDensity(1, x, y, z))
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				assert.Equal(t, 10.0, *grid.GetSubstrateDensity(0, x, y, z))
			}
		}
	}
}

// TestBulkSourceSteadyStateFixedPoint checks that at rho=T with any
// S>0, U=0 the update is a fixed point.
func TestBulkSourceSteadyStateFixedPoint(t *testing.T) {
	mesh := NewCartesianMesh(1, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	grid := NewSubstrateGrid(mesh, 1)
	grid.InitialConditions[0] = 6
	grid.FillInitialConditions()

	solver := NewBulkSourceSolver(0.5)
	solver.Formula = func(substrate, x, y, z int) (float64, float64, float64) {
		return 3, 6, 0
	}
	solver.Solve(grid)

	assert.InDelta(t, 6.0, *grid.GetSubstrateDensity(0, 0, 0, 0), 1e-9)
}

func TestBulkSourceNilFormulaIsNoOp(t *testing.T) {
	mesh := NewCartesianMesh(1, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	grid := NewSubstrateGrid(mesh, 1)
	grid.InitialConditions[0] = 42
	grid.FillInitialConditions()

	solver := NewBulkSourceSolver(1)
	assert.NotPanics(t, func() { solver.Solve(grid) })
	assert.Equal(t, 42.0, *grid.GetSubstrateDensity(0, 0, 0, 0))
}
