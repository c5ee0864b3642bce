package cellmesh

import "sync/atomic"

// AgentHandle is a stable reference to an agent. It survives
// swap-removal of other agents: a handle resolves through the
// container's id/slot indirection table rather than storing a slot
// index directly. The zero value is the null handle.
type AgentHandle struct {
	id uint64
}

// Valid reports whether h is not the null handle. It does not by
// itself guarantee the handle still resolves to a live agent.
func (h AgentHandle) Valid() bool { return h.id != 0 }

// AgentContainer owns the agentStore and mints AgentHandles through a
// single flat id/slot indirection table, since this simulation has
// one fixed agent schema rather than dynamic archetypes. IDs are
// minted from a monotonic counter rather than a uuid: the indirection
// table already gives handles stability across swap-removal, so a
// uuid would only add allocation cost without adding any guarantee
// the counter doesn't already provide.
type AgentContainer struct {
	store *agentStore

	idCounter uint64

	idToSlot map[uint64]int
	slotToID []uint64
}

func NewAgentContainer(dims, substratesCount, agentTypesCount int) *AgentContainer {
	return &AgentContainer{
		store:    newAgentStore(dims, substratesCount, agentTypesCount),
		idToSlot: make(map[uint64]int),
	}
}

func (c *AgentContainer) Size() int { return c.store.agentsCount() }

// Create appends a new agent and returns a handle to it.
func (c *AgentContainer) Create() AgentHandle {
	slot := c.store.add()
	id := atomic.AddUint64(&c.idCounter, 1)
	c.idToSlot[id] = slot
	c.slotToID = append(c.slotToID, id)
	return AgentHandle{id: id}
}

// slotOf resolves a handle to its current slot, or -1 if the handle
// is null or no longer live.
func (c *AgentContainer) slotOf(h AgentHandle) int {
	if h.id == 0 {
		return -1
	}
	slot, ok := c.idToSlot[h.id]
	if !ok {
		return -1
	}
	return slot
}

// GetAgentAt returns a handle to the agent currently at slot i, or
// the null handle if i is out of range.
func (c *AgentContainer) GetAgentAt(i int) AgentHandle {
	if i < 0 || i >= len(c.slotToID) {
		violation("GetAgentAt(%d): index out of range [0,%d)", i, len(c.slotToID))
		return AgentHandle{}
	}
	return AgentHandle{id: c.slotToID[i]}
}

// RemoveAgent invalidates h and removes its agent, swap-moving the
// last slot into h's slot and rebinding the moved agent's handle.
func (c *AgentContainer) RemoveAgent(h AgentHandle) {
	slot := c.slotOf(h)
	if slot < 0 {
		violation("RemoveAgent: handle does not resolve to a live agent")
		return
	}
	c.removeAtSlot(slot)
}

// RemoveAt removes the agent at slot i directly, the same way
// RemoveAgent does by handle.
func (c *AgentContainer) RemoveAt(i int) {
	n := c.store.agentsCount()
	if i < 0 || i >= n {
		violation("RemoveAt(%d): index out of range [0,%d)", i, n)
		return
	}
	c.removeAtSlot(i)
}

// removeAtSlot swaps the last slot into slot and shrinks the store.
// Neighbor lists are rebuilt from scratch every step, so a stale slot
// index there is harmless; spring_attachments are not automatically
// re-indexed across a removal, since they are a caller-managed graph
// of slot indices, not handles.
func (c *AgentContainer) removeAtSlot(slot int) {
	n := c.store.agentsCount()
	last := n - 1
	removedID := c.slotToID[slot]
	delete(c.idToSlot, removedID)

	if slot != last {
		movedID := c.slotToID[last]
		c.idToSlot[movedID] = slot
		c.slotToID[slot] = movedID
	}
	c.slotToID = c.slotToID[:last]

	c.store.removeAt(slot)
}
