package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// This file defines the plain data structures an external config
// loader (XML, YAML, whatever) would populate; no textual parser is
// implemented here, deliberately, which keeps this the seam where a
// loader plugs in. BuildEnvironment reduces a SimulationConfig to the
// in-memory structures the rest of the package operates on.

type DomainConfig struct {
	Dims       int
	Mins       mgl64.Vec3
	Maxs       mgl64.Vec3
	VoxelShape mgl64.Vec3
}

type SubstrateConfig struct {
	Name                 string
	DiffusionCoefficient float64
	DecayRate            float64
	InitialCondition     float64
}

type CellDefinitionConfig struct {
	Name                            string
	Radius                          float64
	CellCellRepulsionStrength       float64
	CellCellAdhesionStrength        float64
	RelativeMaximumAdhesionDistance float64
	SpringConstant                  float64
	IsMotile                        bool
	IsMovable                       bool
}

type SimulationConfig struct {
	Domain      DomainConfig
	Substrates  []SubstrateConfig
	CellTypes   []CellDefinitionConfig
	MechanicsDt float64
	DiffusionDt float64
	RandomSeed  uint64
}

// BuildEnvironment reduces cfg to a freshly wired Environment with an
// initialized SubstrateGrid (filled with each substrate's initial
// condition) and a factored ThomasDiffusionSolver. No agents are
// created; callers populate the agent container via Agents().Create.
func BuildEnvironment(cfg SimulationConfig) *Environment {
	mesh := NewCartesianMesh(cfg.Domain.Dims, cfg.Domain.Mins, cfg.Domain.Maxs, cfg.Domain.VoxelShape)

	env := NewEnvironment(mesh, len(cfg.CellTypes), len(cfg.Substrates), cfg.MechanicsDt)

	grid := NewSubstrateGrid(mesh, len(cfg.Substrates))
	for i, s := range cfg.Substrates {
		grid.DiffusionCoefficients[i] = s.DiffusionCoefficient
		grid.DecayRates[i] = s.DecayRate
		grid.InitialConditions[i] = s.InitialCondition
	}
	grid.FillInitialConditions()
	env.Substrates = grid

	diffusion := NewThomasDiffusionSolver(cfg.DiffusionDt)
	if err := diffusion.Initialize(grid); err != nil {
		env.Logger.Errorf("diffusion initialize failed: %v", err)
	}
	env.Diffusion = diffusion

	env.BulkSource = NewBulkSourceSolver(cfg.DiffusionDt)

	return env
}
