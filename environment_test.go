package cellmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRunSingleTimestepDrivesAllKernels(t *testing.T) {
	mesh := NewCartesianMesh(2, mgl64.Vec3{-50, -50, 0}, mgl64.Vec3{50, 50, 0}, mgl64.Vec3{5, 5, 1})
	env := NewEnvironment(mesh, 1, 1, 0.01)

	h0 := env.Agents().Create()
	h1 := env.Agents().Create()
	env.Agents().SetPosition(h0, mgl64.Vec3{0, 0, 0})
	env.Agents().SetPosition(h1, mgl64.Vec3{1, 0, 0})
	for _, h := range []AgentHandle{h0, h1} {
		env.Agents().SetRadius(h, 1)
		env.Agents().SetCellCellRepulsionStrength(h, 1)
		env.Agents().SetRelativeMaximumAdhesionDistance(h, 1)
	}

	assert.NotPanics(t, func() {
		env.RunSingleTimestep(nil, 1)
	})

	// Repulsion should have separated the overlapping pair along x.
	assert.Less(t, env.Agents().Position(h0).X(), 0.0)
	assert.Greater(t, env.Agents().Position(h1).X(), 1.0)
}

func TestRunSingleTimestepWithSubstratesAndBulkSource(t *testing.T) {
	mesh := NewCartesianMesh(2, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{2, 2, 1})
	env := NewEnvironment(mesh, 1, 1, 0.01)

	grid := NewSubstrateGrid(mesh, 1)
	grid.DiffusionCoefficients[0] = 1
	grid.DecayRates[0] = 0.1
	grid.InitialConditions[0] = 5
	grid.FillInitialConditions()
	env.Substrates = grid

	diffusion := NewThomasDiffusionSolver(0.01)
	requireNoErr(t, diffusion.Initialize(grid))
	env.Diffusion = diffusion

	bulk := NewBulkSourceSolver(0.01)
	bulk.Formula = func(substrate, x, y, z int) (float64, float64, float64) {
		if x == 0 && y == 0 {
			return 2, 10, 0
		}
		return 0, 0, 0
	}
	env.BulkSource = bulk

	assert.NotPanics(t, func() {
		env.RunSingleTimestep(nil, 1)
	})

	assert.Greater(t, *grid.GetSubstrateDensity(0, 0, 0, 0), 5.0)
}

func requireNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunSingleTimestepIsNoOpSafeWithoutSolvers(t *testing.T) {
	mesh := NewCartesianMesh(1, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10}, mgl64.Vec3{2, 2, 2})
	env := NewEnvironment(mesh, 1, 0, 0.1)
	env.Agents().Create()

	assert.NotPanics(t, func() {
		env.RunSingleTimestep(nil, 1)
	})
}
