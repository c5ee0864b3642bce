package cellmesh

// SubstrateGrid is the shared substrate density field: a contiguous
// array of voxel_count x substrates_count densities, indexed so that
// a fixed axis sweep walks contiguous memory (see
// CartesianMesh.VoxelIndex), plus the per-substrate companion arrays.
type SubstrateGrid struct {
	Mesh            *CartesianMesh
	SubstratesCount int

	Densities []float64 // [voxel*SubstratesCount+s]

	DiffusionCoefficients []float64 // [s]
	DecayRates            []float64 // [s]
	InitialConditions     []float64 // [s]

	dirichletSet map[int]float64 // key: voxel*SubstratesCount+s
}

func NewSubstrateGrid(mesh *CartesianMesh, substratesCount int) *SubstrateGrid {
	n := mesh.VoxelCount() * substratesCount
	return &SubstrateGrid{
		Mesh:                  mesh,
		SubstratesCount:       substratesCount,
		Densities:             make([]float64, n),
		DiffusionCoefficients: make([]float64, substratesCount),
		DecayRates:            make([]float64, substratesCount),
		InitialConditions:     make([]float64, substratesCount),
		dirichletSet:          make(map[int]float64),
	}
}

func (g *SubstrateGrid) index(s, x, y, z int) int {
	voxel := g.Mesh.VoxelIndex(x, y, z)
	return voxel*g.SubstratesCount + s
}

// GetSubstrateDensity yields a read/write reference: the returned
// pointer aliases the backing array directly.
func (g *SubstrateGrid) GetSubstrateDensity(s, x, y, z int) *float64 {
	return &g.Densities[g.index(s, x, y, z)]
}

// FillInitialConditions replicates InitialConditions across every
// voxel.
func (g *SubstrateGrid) FillInitialConditions() {
	count := g.Mesh.VoxelCount()
	for v := 0; v < count; v++ {
		for s := 0; s < g.SubstratesCount; s++ {
			g.Densities[v*g.SubstratesCount+s] = g.InitialConditions[s]
		}
	}
}

// SetDirichlet marks voxel (x,y,z) of substrate s as a fixed-value
// voxel and writes value into it immediately.
func (g *SubstrateGrid) SetDirichlet(s, x, y, z int, value float64) {
	key := g.index(s, x, y, z)
	g.dirichletSet[key] = value
	g.Densities[key] = value
}

// ReinitializeDirichlet reapplies every registered fixed-value voxel,
// for use after external code edits densities directly.
func (g *SubstrateGrid) ReinitializeDirichlet() {
	for key, value := range g.dirichletSet {
		g.Densities[key] = value
	}
}
