package cellmesh

// BulkSourceFormula supplies the per-voxel, per-substrate (supply,
// target, uptake) triple for the bulk source update. A nil formula
// makes BulkSourceSolver.Solve a legal no-op.
type BulkSourceFormula func(substrate, x, y, z int) (supply, target, uptake float64)

// BulkSourceSolver applies a caller-supplied uptake/secretion formula
// to every voxel between diffusion substeps:
// rho <- (rho + dt*S*T)/(1 + dt*(U+S)), an implicit update chosen so
// a voxel with S=U=0 is left untouched and the limit as
// dt->infinity is rho=S*T/(S+U) (rho=T when U=0) regardless of the
// starting density.
type BulkSourceSolver struct {
	dt      float64
	Formula BulkSourceFormula
}

func NewBulkSourceSolver(dt float64) *BulkSourceSolver {
	return &BulkSourceSolver{dt: dt}
}

// Solve walks every voxel of every substrate, writing the updated
// density back through GetSubstrateDensity's read/write reference.
func (b *BulkSourceSolver) Solve(grid *SubstrateGrid) {
	if b.Formula == nil {
		return
	}
	m := grid.Mesh
	for z := 0; z < m.GridShape[2]; z++ {
		for y := 0; y < m.GridShape[1]; y++ {
			for x := 0; x < m.GridShape[0]; x++ {
				for s := 0; s < grid.SubstratesCount; s++ {
					supply, target, uptake := b.Formula(s, x, y, z)
					ref := grid.GetSubstrateDensity(s, x, y, z)
					*ref = (*ref + b.dt*supply*target) / (1 + b.dt*(uptake+supply))
				}
			}
		}
	}
}
