package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// This file exposes typed, bounds-checked per-agent views over the
// columnar store. Each accessor resolves a handle to its current slot
// and reads/writes straight into the backing column, so there is no
// copying on the hot path.

func (c *AgentContainer) Position(h AgentHandle) mgl64.Vec3 {
	i := c.slotOf(h)
	if i < 0 {
		return mgl64.Vec3{}
	}
	return c.store.positions[i]
}

func (c *AgentContainer) SetPosition(h AgentHandle, p mgl64.Vec3) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetPosition: handle does not resolve to a live agent")
		return
	}
	c.store.positions[i] = p
}

func (c *AgentContainer) Velocity(h AgentHandle) mgl64.Vec3 {
	i := c.slotOf(h)
	if i < 0 {
		return mgl64.Vec3{}
	}
	return c.store.velocity[i]
}

func (c *AgentContainer) SetVelocity(h AgentHandle, v mgl64.Vec3) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetVelocity: handle does not resolve to a live agent")
		return
	}
	c.store.velocity[i] = v
}

func (c *AgentContainer) Radius(h AgentHandle) float64 {
	i := c.slotOf(h)
	if i < 0 {
		return 0
	}
	return c.store.radius[i]
}

func (c *AgentContainer) SetRadius(h AgentHandle, r float64) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetRadius: handle does not resolve to a live agent")
		return
	}
	c.store.radius[i] = r
}

func (c *AgentContainer) SimplePressure(h AgentHandle) float64 {
	i := c.slotOf(h)
	if i < 0 {
		return 0
	}
	return c.store.simplePressure[i]
}

func (c *AgentContainer) IsMovable(h AgentHandle) bool {
	i := c.slotOf(h)
	if i < 0 {
		return false
	}
	return c.store.isMovable[i] != 0
}

func (c *AgentContainer) SetIsMovable(h AgentHandle, movable bool) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetIsMovable: handle does not resolve to a live agent")
		return
	}
	if movable {
		c.store.isMovable[i] = 1
	} else {
		c.store.isMovable[i] = 0
	}
}

func (c *AgentContainer) IsMotile(h AgentHandle) bool {
	i := c.slotOf(h)
	if i < 0 {
		return false
	}
	return c.store.isMotile[i] != 0
}

func (c *AgentContainer) SetIsMotile(h AgentHandle, motile bool) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetIsMotile: handle does not resolve to a live agent")
		return
	}
	if motile {
		c.store.isMotile[i] = 1
	} else {
		c.store.isMotile[i] = 0
	}
}

func (c *AgentContainer) AgentType(h AgentHandle) int {
	i := c.slotOf(h)
	if i < 0 {
		return 0
	}
	return c.store.agentTypeIndex[i]
}

func (c *AgentContainer) SetAgentType(h AgentHandle, t int) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetAgentType: handle does not resolve to a live agent")
		return
	}
	c.store.agentTypeIndex[i] = t
}

func (c *AgentContainer) SetCellCellRepulsionStrength(h AgentHandle, v float64) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetCellCellRepulsionStrength: handle does not resolve to a live agent")
		return
	}
	c.store.cellCellRepulsionStrength[i] = v
}

func (c *AgentContainer) SetCellCellAdhesionStrength(h AgentHandle, v float64) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetCellCellAdhesionStrength: handle does not resolve to a live agent")
		return
	}
	c.store.cellCellAdhesionStrength[i] = v
}

func (c *AgentContainer) SetRelativeMaximumAdhesionDistance(h AgentHandle, v float64) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetRelativeMaximumAdhesionDistance: handle does not resolve to a live agent")
		return
	}
	c.store.relativeMaximumAdhesionDistance[i] = v
}

func (c *AgentContainer) SetSpringConstant(h AgentHandle, v float64) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetSpringConstant: handle does not resolve to a live agent")
		return
	}
	c.store.springConstant[i] = v
}

func (c *AgentContainer) SetMotilityDirection(h AgentHandle, dir mgl64.Vec3) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetMotilityDirection: handle does not resolve to a live agent")
		return
	}
	c.store.motilityDirection[i] = dir
}

// SetCellAdhesionAffinity sets affinity[selfType][otherType]. The
// matrix need not be symmetric.
func (c *AgentContainer) SetCellAdhesionAffinity(selfType, otherType int, v float64) {
	c.store.cellAdhesionAffinity[selfType][otherType] = v
}

// SecretionRates returns the per-substrate secretion-rate span for h.
func (c *AgentContainer) SecretionRates(h AgentHandle) []float64 {
	i := c.slotOf(h)
	if i < 0 {
		return nil
	}
	return c.store.substrateSpan(c.store.secretionRates, i)
}

func (c *AgentContainer) SaturationDensities(h AgentHandle) []float64 {
	i := c.slotOf(h)
	if i < 0 {
		return nil
	}
	return c.store.substrateSpan(c.store.saturationDensities, i)
}

func (c *AgentContainer) UptakeRates(h AgentHandle) []float64 {
	i := c.slotOf(h)
	if i < 0 {
		return nil
	}
	return c.store.substrateSpan(c.store.uptakeRates, i)
}

func (c *AgentContainer) Volume(h AgentHandle) float64 {
	i := c.slotOf(h)
	if i < 0 {
		return 0
	}
	return c.store.volumes[i]
}

func (c *AgentContainer) SetVolume(h AgentHandle, v float64) {
	i := c.slotOf(h)
	if i < 0 {
		violation("SetVolume: handle does not resolve to a live agent")
		return
	}
	c.store.volumes[i] = v
}

// AttachSpring records a spring attachment between h and other. The
// attachment is stored as a symmetric pair of slot-index lists, not
// as a pointer cycle; the container remains the sole owner.
func (c *AgentContainer) AttachSpring(h, other AgentHandle) {
	i, j := c.slotOf(h), c.slotOf(other)
	if i < 0 || j < 0 {
		violation("AttachSpring: handle does not resolve to a live agent")
		return
	}
	c.store.springAttachments[i] = append(c.store.springAttachments[i], j)
	c.store.springAttachments[j] = append(c.store.springAttachments[j], i)
}
