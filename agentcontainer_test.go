package cellmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHandleStability removes the middle of three agents and confirms
// slot 0 is untouched, slot 1 now holds what was the last agent, and
// the handle that pointed at it still resolves correctly.
func TestHandleStability(t *testing.T) {
	c := NewAgentContainer(2, 1, 1)

	h0 := c.Create()
	c.SetRadius(h0, 1)
	h1 := c.Create()
	c.SetRadius(h1, 2)
	h2 := c.Create()
	c.SetRadius(h2, 3)

	c.RemoveAgent(h1)

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, float64(1), c.Radius(h0))
	assert.Equal(t, float64(3), c.Radius(h2))
	assert.Equal(t, float64(3), c.store.radius[1])
}

func TestRemoveAtPreservesOtherSlotsBitwise(t *testing.T) {
	c := NewAgentContainer(2, 1, 1)
	handles := make([]AgentHandle, 4)
	for i := range handles {
		handles[i] = c.Create()
		c.SetRadius(handles[i], float64(i+1))
	}

	c.RemoveAt(1)

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, float64(1), c.Radius(handles[0]))
	assert.Equal(t, float64(4), c.Radius(handles[3])) // moved into slot 1
	assert.Equal(t, float64(3), c.Radius(handles[2]))
}

func TestRemovedHandleNoLongerResolves(t *testing.T) {
	c := NewAgentContainer(2, 1, 1)
	h := c.Create()
	c.RemoveAgent(h)
	assert.Equal(t, -1, c.slotOf(h))
}
