package cellmesh

// Environment composes the mesh, agent container, and solvers into a
// fixed step pipeline: this domain has exactly one pipeline rather
// than a pluggable stage graph, so RunSingleTimestep is a
// straight-line method instead of a configurable scheduler.
type Environment struct {
	mesh   *CartesianMesh
	agents *AgentContainer

	Substrates *SubstrateGrid
	Diffusion  *ThomasDiffusionSolver
	BulkSource *BulkSourceSolver

	Logger Logger

	Dt float64 // mechanics timestep
}

// NewEnvironment wires a mesh and agent container into a fresh
// Environment. Substrates/Diffusion/BulkSource are left nil and may
// be attached afterward; a nil Diffusion or BulkSource is a legal
// no-op in RunSingleTimestep.
func NewEnvironment(mesh *CartesianMesh, agentTypesCount, substratesCount int, dt float64) *Environment {
	return &Environment{
		mesh:   mesh,
		agents: NewAgentContainer(mesh.Dims, substratesCount, agentTypesCount),
		Logger: NewNopLogger(),
		Dt:     dt,
	}
}

func (e *Environment) Mesh() *CartesianMesh    { return e.mesh }
func (e *Environment) Agents() *AgentContainer { return e.agents }

// RunSingleTimestep runs the fixed kernel order: clear forces,
// rebuild neighbors, compute forces, motility, basement membrane,
// springs, integrate positions, bulk source update, diffusion solve.
// Missing solvers (nil Substrates/Diffusion/BulkSource) are legal
// no-ops.
func (e *Environment) RunSingleTimestep(bias MotilityBias, diffusionIterations int) {
	e.Logger.Debugf("clearForces")
	e.clearForces()

	e.Logger.Debugf("rebuildNeighbors")
	e.rebuildNeighbors()

	e.Logger.Debugf("computeForces")
	e.computeForces()

	e.Logger.Debugf("applyMotility")
	e.applyMotility(bias)

	e.Logger.Debugf("applyBasementMembrane")
	e.applyBasementMembrane()

	e.Logger.Debugf("applySpringAttachments")
	e.applySpringAttachments()

	e.Logger.Debugf("integratePositions")
	e.integratePositions(e.Dt)

	if e.Substrates != nil && e.BulkSource != nil {
		e.Logger.Debugf("bulkSource")
		e.BulkSource.Solve(e.Substrates)
	}

	if e.Substrates != nil && e.Diffusion != nil {
		e.Logger.Debugf("diffusion")
		if err := e.Diffusion.Solve(e.Substrates, diffusionIterations); err != nil {
			e.Logger.Errorf("diffusion solve failed: %v", err)
		}
	}
}
