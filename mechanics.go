package cellmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minPairDistance guards the repulsion/adhesion kernel against the
// singularity at d=0.
const minPairDistance = 1e-5

// clearForces zeroes the per-step force accumulators (velocity,
// simple_pressure, force) so the pairwise kernel starts from a clean
// slate. integratePositions already zeroes the velocity of movable
// agents at the end of the previous step, but simple_pressure is reset
// only here.
func (e *Environment) clearForces() {
	s := e.agents.store
	for i := range s.simplePressure {
		s.simplePressure[i] = 0
		s.force[i] = mgl64.Vec3{}
		s.velocity[i] = mgl64.Vec3{}
	}
}

// computeForces runs the pairwise repulsion/adhesion/simple-pressure
// kernel. For every movable agent i and each j in neighbors[i], it
// accumulates -F_rep and +F_adh into agent i's velocity. Because the
// loop is asymmetric (each i walks only its own neighbor list) the
// two sides of a symmetric pair both run and their contributions
// cancel to float round-off (see TestSymmetricRepulsionCancelsToRoundoff).
func (e *Environment) computeForces() {
	s := e.agents.store
	n := s.agentsCount()

	for i := 0; i < n; i++ {
		if s.isMovable[i] == 0 {
			continue
		}
		for _, j := range s.neighbors[i] {
			e.solvePair(i, j)
		}
	}
}

func (e *Environment) solvePair(i, j int) {
	s := e.agents.store

	r := s.positions[j].Sub(s.positions[i])
	d := r.Len()
	if d < minPairDistance {
		return
	}
	rhat := r.Mul(1 / d)

	ri := s.relativeMaximumAdhesionDistance[i] * s.radius[i]
	rj := s.relativeMaximumAdhesionDistance[j] * s.radius[j]
	repulsionRange := s.radius[i] + s.radius[j]

	if d < repulsionRange {
		shape := 1 - d/repulsionRange
		shape *= shape
		fRep := rhat.Mul(s.cellCellRepulsionStrength[i] * shape)
		s.velocity[i] = s.velocity[i].Sub(fRep)
		s.simplePressure[i] += shape
	}

	adhesionRange := ri + rj
	if adhesionRange > 0 && d <= adhesionRange {
		ti, tj := s.agentTypeIndex[i], s.agentTypeIndex[j]
		affinity := math.Sqrt(s.cellAdhesionAffinity[ti][tj] * s.cellAdhesionAffinity[tj][ti])
		shape := 1 - d/adhesionRange
		shape *= shape
		fAdh := rhat.Mul(s.cellCellAdhesionStrength[i] * affinity * shape)
		s.velocity[i] = s.velocity[i].Add(fAdh)
	}
}

// MotilityBias is injected by higher layers (chemotaxis, external
// bias terms); it is called once per motile agent and its return
// value is summed into velocity alongside the persistence term.
type MotilityBias func(h AgentHandle) mgl64.Vec3

// applyMotility adds a persistence term along motility_direction[i]
// for every motile agent. A nil bias is a legal no-op.
func (e *Environment) applyMotility(bias MotilityBias) {
	s := e.agents.store
	n := s.agentsCount()
	for i := 0; i < n; i++ {
		if s.isMotile[i] == 0 {
			continue
		}
		s.velocity[i] = s.velocity[i].Add(s.motilityDirection[i])
		if bias != nil {
			s.velocity[i] = s.velocity[i].Add(bias(e.agents.GetAgentAt(i)))
		}
	}
}

// applyBasementMembrane adds a boundary repulsion term for agents
// whose position lies within their own radius of a bounding-box face
// along any active axis.
func (e *Environment) applyBasementMembrane() {
	s := e.agents.store
	n := s.agentsCount()
	m := e.mesh

	for i := 0; i < n; i++ {
		if s.isMovable[i] == 0 {
			continue
		}
		r := s.radius[i]
		if r <= 0 {
			continue
		}
		var push mgl64.Vec3
		for axis := 0; axis < m.Dims; axis++ {
			distLo := s.positions[i][axis] - m.BoundingBoxMins[axis]
			if distLo < r {
				push[axis] += s.cellCellRepulsionStrength[i] * (r - distLo) / r
			}
			distHi := m.BoundingBoxMaxs[axis] - s.positions[i][axis]
			if distHi < r {
				push[axis] -= s.cellCellRepulsionStrength[i] * (r - distHi) / r
			}
		}
		s.velocity[i] = s.velocity[i].Add(push)
	}
}

// applySpringAttachments applies a Hookean restoring force between
// attached agent pairs, scaled by spring_constant[i], toward the pair's
// rest length (the sum of the two radii, matching an undeformed
// cell-cell contact).
func (e *Environment) applySpringAttachments() {
	s := e.agents.store
	n := s.agentsCount()
	for i := 0; i < n; i++ {
		if s.isMovable[i] == 0 || s.springConstant[i] == 0 {
			continue
		}
		for _, j := range s.springAttachments[i] {
			if j < 0 || j >= n {
				continue
			}
			r := s.positions[j].Sub(s.positions[i])
			d := r.Len()
			if d < minPairDistance {
				continue
			}
			rest := s.radius[i] + s.radius[j]
			stretch := d - rest
			f := r.Mul(1 / d).Mul(s.springConstant[i] * stretch)
			s.velocity[i] = s.velocity[i].Add(f)
		}
	}
}

// integratePositions performs the two-step Adams-Bashforth update:
// x += dt*(1.5*v - 0.5*v_prev); v_prev = v; v = 0. Immovable agents
// skip the update entirely (their velocity is left untouched, not
// zeroed; of the force passes only applyMotility adds to it, and
// clearForces resets it at the start of the next step).
func (e *Environment) integratePositions(dt float64) {
	s := e.agents.store
	n := s.agentsCount()
	for i := 0; i < n; i++ {
		if s.isMovable[i] == 0 {
			continue
		}
		step := s.velocity[i].Mul(1.5).Sub(s.previousVelocity[i].Mul(0.5)).Mul(dt)
		s.positions[i] = s.positions[i].Add(step)
		s.previousVelocity[i] = s.velocity[i]
		s.velocity[i] = mgl64.Vec3{}
	}
}
