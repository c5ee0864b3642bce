package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// neighborGrid is a hash grid bucketing agent slots by voxel
// coordinate: cleared and fully rebuilt every call, keyed by integer
// cell coordinate, queried by scanning the 3x3x3 (or 3x3 / 3,
// depending on dims) neighborhood around a query cell.
type neighborGrid struct {
	cellSize float64
	cells    map[[3]int][]int
}

func newNeighborGrid(cellSize float64) *neighborGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &neighborGrid{
		cellSize: cellSize,
		cells:    make(map[[3]int][]int),
	}
}

func (g *neighborGrid) clear() {
	for k := range g.cells {
		delete(g.cells, k)
	}
}

func (g *neighborGrid) cellOf(p mgl64.Vec3) [3]int {
	return [3]int{
		int(floorDiv(p[0], g.cellSize)),
		int(floorDiv(p[1], g.cellSize)),
		int(floorDiv(p[2], g.cellSize)),
	}
}

func floorDiv(v, cell float64) float64 {
	q := v / cell
	if q < 0 {
		i := int(q)
		if float64(i) != q {
			i--
		}
		return float64(i)
	}
	return float64(int(q))
}

func (g *neighborGrid) insert(slot int, p mgl64.Vec3) {
	key := g.cellOf(p)
	g.cells[key] = append(g.cells[key], slot)
}

// candidatesAround returns every slot bucketed in the neighborhood
// (inclusive) of p, across a dims-sized stencil (so a 1D mesh only
// scans along x, a 2D mesh scans x/y, etc.).
func (g *neighborGrid) candidatesAround(p mgl64.Vec3, dims int) []int {
	center := g.cellOf(p)
	var out []int

	xr, yr, zr := 1, 0, 0
	if dims >= 2 {
		yr = 1
	}
	if dims >= 3 {
		zr = 1
	}

	for dx := -xr; dx <= xr; dx++ {
		for dy := -yr; dy <= yr; dy++ {
			for dz := -zr; dz <= zr; dz++ {
				key := [3]int{center[0] + dx, center[1] + dy, center[2] + dz}
				out = append(out, g.cells[key]...)
			}
		}
	}
	return out
}

// rebuildNeighbors rebuilds every movable agent's neighbor list from
// scratch every call. Agents with IsMovable=0 are not probed as
// sources (empty neighbor list) but may still appear as neighbors of
// a movable partner.
func (e *Environment) rebuildNeighbors() {
	s := e.agents.store
	n := s.agentsCount()

	for i := 0; i < n; i++ {
		s.neighbors[i] = s.neighbors[i][:0]
	}
	if n == 0 {
		return
	}

	maxAdhesion := 0.0
	for i := 0; i < n; i++ {
		r := s.relativeMaximumAdhesionDistance[i] * s.radius[i]
		if r > maxAdhesion {
			maxAdhesion = r
		}
	}
	cellSize := maxAdhesion * 2
	if cellSize <= 0 {
		cellSize = 1
	}

	grid := newNeighborGrid(cellSize)
	for i := 0; i < n; i++ {
		grid.insert(i, s.positions[i])
	}

	for i := 0; i < n; i++ {
		if s.isMovable[i] == 0 {
			continue
		}
		ri := s.relativeMaximumAdhesionDistance[i] * s.radius[i]
		candidates := grid.candidatesAround(s.positions[i], e.mesh.Dims)
		for _, j := range candidates {
			if j == i {
				continue
			}
			rj := s.relativeMaximumAdhesionDistance[j] * s.radius[j]
			adhesionDistance := ri + rj
			if adhesionDistance <= 0 {
				continue
			}
			d := s.positions[i].Sub(s.positions[j]).Len()
			if d <= adhesionDistance {
				s.neighbors[i] = append(s.neighbors[i], j)
			}
		}
	}
}
