package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// agentStore is the structure-of-arrays container for every per-agent
// column used by the mechanics and reaction-diffusion subsystems. It
// is a plain value type, not an interface: the simulation has exactly
// one fixed agent schema, so there is no need for dynamic
// per-archetype component storage.
type agentStore struct {
	dims            int
	substratesCount int
	agentTypesCount int

	// base columns, shared by mechanics and reaction-diffusion
	positions []mgl64.Vec3

	// mechanics columns
	radius                           []float64
	agentTypeIndex                   []int
	isMovable                        []int
	isMotile                         []int
	cellID                           []int
	cellCellRepulsionStrength        []float64
	cellCellAdhesionStrength         []float64
	relativeMaximumAdhesionDistance  []float64
	springConstant                   []float64
	simplePressure                   []float64
	velocity                         []mgl64.Vec3
	previousVelocity                 []mgl64.Vec3
	force                            []mgl64.Vec3
	motilityDirection                []mgl64.Vec3
	neighbors                        [][]int
	springAttachments                [][]int

	// agent_types_count x agent_types_count, not resized by add/removeAt
	cellAdhesionAffinity [][]float64

	// reaction-diffusion columns, length agentsCount*substratesCount
	secretionRates                   []float64
	saturationDensities               []float64
	uptakeRates                       []float64
	netExportRates                    []float64
	internalizedSubstrates            []float64
	fractionReleasedAtDeath           []float64
	fractionTransferredWhenIngested   []float64
	volumes                            []float64
}

func newAgentStore(dims, substratesCount, agentTypesCount int) *agentStore {
	affinity := make([][]float64, agentTypesCount)
	for i := range affinity {
		affinity[i] = make([]float64, agentTypesCount)
	}
	return &agentStore{
		dims:                 dims,
		substratesCount:      substratesCount,
		agentTypesCount:      agentTypesCount,
		cellAdhesionAffinity: affinity,
	}
}

func (s *agentStore) agentsCount() int { return len(s.positions) }

// add appends one default-initialized slot to every column: scalars
// default to zero except is_movable=1, is_motile=0, cell_id=-1,
// agent_type=0; vector rows default to zero; nested lists start
// empty.
func (s *agentStore) add() int {
	i := s.agentsCount()

	s.positions = append(s.positions, mgl64.Vec3{})

	s.radius = append(s.radius, 0)
	s.agentTypeIndex = append(s.agentTypeIndex, 0)
	s.isMovable = append(s.isMovable, 1)
	s.isMotile = append(s.isMotile, 0)
	s.cellID = append(s.cellID, -1)
	s.cellCellRepulsionStrength = append(s.cellCellRepulsionStrength, 0)
	s.cellCellAdhesionStrength = append(s.cellCellAdhesionStrength, 0)
	s.relativeMaximumAdhesionDistance = append(s.relativeMaximumAdhesionDistance, 0)
	s.springConstant = append(s.springConstant, 0)
	s.simplePressure = append(s.simplePressure, 0)
	s.velocity = append(s.velocity, mgl64.Vec3{})
	s.previousVelocity = append(s.previousVelocity, mgl64.Vec3{})
	s.force = append(s.force, mgl64.Vec3{})
	s.motilityDirection = append(s.motilityDirection, mgl64.Vec3{})
	s.neighbors = append(s.neighbors, nil)
	s.springAttachments = append(s.springAttachments, nil)

	n := s.substratesCount
	s.secretionRates = append(s.secretionRates, make([]float64, n)...)
	s.saturationDensities = append(s.saturationDensities, make([]float64, n)...)
	s.uptakeRates = append(s.uptakeRates, make([]float64, n)...)
	s.netExportRates = append(s.netExportRates, make([]float64, n)...)
	s.internalizedSubstrates = append(s.internalizedSubstrates, make([]float64, n)...)
	s.fractionReleasedAtDeath = append(s.fractionReleasedAtDeath, make([]float64, n)...)
	s.fractionTransferredWhenIngested = append(s.fractionTransferredWhenIngested, make([]float64, n)...)
	s.volumes = append(s.volumes, 0)

	return i
}

// removeAt swaps the last slot into i, then shrinks every column by
// one, in O(column_count) time regardless of N. A contract violation
// (i out of range) is reported via violation() and is otherwise a
// no-op.
func (s *agentStore) removeAt(i int) {
	n := s.agentsCount()
	if i < 0 || i >= n {
		violation("removeAt(%d): index out of range [0,%d)", i, n)
		return
	}
	last := n - 1
	if i != last {
		s.positions[i] = s.positions[last]

		s.radius[i] = s.radius[last]
		s.agentTypeIndex[i] = s.agentTypeIndex[last]
		s.isMovable[i] = s.isMovable[last]
		s.isMotile[i] = s.isMotile[last]
		s.cellID[i] = s.cellID[last]
		s.cellCellRepulsionStrength[i] = s.cellCellRepulsionStrength[last]
		s.cellCellAdhesionStrength[i] = s.cellCellAdhesionStrength[last]
		s.relativeMaximumAdhesionDistance[i] = s.relativeMaximumAdhesionDistance[last]
		s.springConstant[i] = s.springConstant[last]
		s.simplePressure[i] = s.simplePressure[last]
		s.velocity[i] = s.velocity[last]
		s.previousVelocity[i] = s.previousVelocity[last]
		s.force[i] = s.force[last]
		s.motilityDirection[i] = s.motilityDirection[last]
		s.neighbors[i] = s.neighbors[last]
		s.springAttachments[i] = s.springAttachments[last]
		s.volumes[i] = s.volumes[last]

		ns := s.substratesCount
		copy(s.secretionRates[i*ns:(i+1)*ns], s.secretionRates[last*ns:(last+1)*ns])
		copy(s.saturationDensities[i*ns:(i+1)*ns], s.saturationDensities[last*ns:(last+1)*ns])
		copy(s.uptakeRates[i*ns:(i+1)*ns], s.uptakeRates[last*ns:(last+1)*ns])
		copy(s.netExportRates[i*ns:(i+1)*ns], s.netExportRates[last*ns:(last+1)*ns])
		copy(s.internalizedSubstrates[i*ns:(i+1)*ns], s.internalizedSubstrates[last*ns:(last+1)*ns])
		copy(s.fractionReleasedAtDeath[i*ns:(i+1)*ns], s.fractionReleasedAtDeath[last*ns:(last+1)*ns])
		copy(s.fractionTransferredWhenIngested[i*ns:(i+1)*ns], s.fractionTransferredWhenIngested[last*ns:(last+1)*ns])
	}

	s.positions = s.positions[:last]
	s.radius = s.radius[:last]
	s.agentTypeIndex = s.agentTypeIndex[:last]
	s.isMovable = s.isMovable[:last]
	s.isMotile = s.isMotile[:last]
	s.cellID = s.cellID[:last]
	s.cellCellRepulsionStrength = s.cellCellRepulsionStrength[:last]
	s.cellCellAdhesionStrength = s.cellCellAdhesionStrength[:last]
	s.relativeMaximumAdhesionDistance = s.relativeMaximumAdhesionDistance[:last]
	s.springConstant = s.springConstant[:last]
	s.simplePressure = s.simplePressure[:last]
	s.velocity = s.velocity[:last]
	s.previousVelocity = s.previousVelocity[:last]
	s.force = s.force[:last]
	s.motilityDirection = s.motilityDirection[:last]
	s.neighbors = s.neighbors[:last]
	s.springAttachments = s.springAttachments[:last]
	s.volumes = s.volumes[:last]

	ns := s.substratesCount
	s.secretionRates = s.secretionRates[:last*ns]
	s.saturationDensities = s.saturationDensities[:last*ns]
	s.uptakeRates = s.uptakeRates[:last*ns]
	s.netExportRates = s.netExportRates[:last*ns]
	s.internalizedSubstrates = s.internalizedSubstrates[:last*ns]
	s.fractionReleasedAtDeath = s.fractionReleasedAtDeath[:last*ns]
	s.fractionTransferredWhenIngested = s.fractionTransferredWhenIngested[:last*ns]
}

// substrateSpan returns the per-agent substrate slice for column col
// at agent slot i.
func (s *agentStore) substrateSpan(col []float64, i int) []float64 {
	n := s.substratesCount
	return col[i*n : (i+1)*n]
}
