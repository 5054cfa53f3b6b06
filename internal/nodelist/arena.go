// Package nodelist implements the singly linked node list. Nodes live in an
// Arena and are referred to by Handle; the List links arena slots by index
// and exclusively owns every node reachable from its head.
package nodelist

import (
	"fmt"

	"github.com/mesh-intelligence/nodelist/pkg/types"
)

// Handle identifies a node slot in an Arena.
type Handle int32

// Nil is the handle of no node. It terminates every chain.
const Nil Handle = -1

// slot is one arena cell. next is meaningful only while linked is true.
type slot struct {
	node   types.Node
	next   Handle
	live   bool
	linked bool
}

// Arena owns node storage. A limit of zero means unbounded; otherwise
// Create fails with types.ErrAllocation once limit nodes are live.
type Arena struct {
	slots []slot
	free  []Handle
	limit int
	live  int
}

// NewArena returns an empty arena holding at most limit live nodes.
func NewArena(limit int) *Arena {
	return &Arena{limit: limit}
}

// Create allocates a node built by types.NewNode and returns its handle.
// Released slots are reused before the arena grows.
func (a *Arena) Create(id int32, name string) (Handle, error) {
	if a.limit > 0 && a.live >= a.limit {
		return Nil, fmt.Errorf("create node %d: %w: arena limit %d reached", id, types.ErrAllocation, a.limit)
	}

	var h Handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		h = Handle(len(a.slots) - 1)
	}

	a.slots[h] = slot{node: types.NewNode(id, name), next: Nil, live: true}
	a.live++
	return h, nil
}

// Node returns a copy of the node behind h.
func (a *Arena) Node(h Handle) (types.Node, error) {
	s, err := a.lookup(h)
	if err != nil {
		return types.Node{}, err
	}
	return s.node, nil
}

// Release frees a node that was never appended to a list. Releasing an
// already released handle returns types.ErrDoubleRelease; a node owned by a
// list is released only through List.DestroyAll.
func (a *Arena) Release(h Handle) error {
	if h >= 0 && int(h) < len(a.slots) && a.slots[h].linked {
		return fmt.Errorf("release %d: owned by a list: %w", h, types.ErrAlreadyLinked)
	}
	return a.release(h)
}

func (a *Arena) release(h Handle) error {
	if h < 0 || int(h) >= len(a.slots) {
		return fmt.Errorf("release %d: %w", h, types.ErrInvalidHandle)
	}
	s := &a.slots[h]
	if !s.live {
		return fmt.Errorf("release %d: %w", h, types.ErrDoubleRelease)
	}
	*s = slot{next: Nil}
	a.free = append(a.free, h)
	a.live--
	return nil
}

// Live returns the number of nodes created and not yet released.
func (a *Arena) Live() int {
	return a.live
}

func (a *Arena) lookup(h Handle) (*slot, error) {
	if h < 0 || int(h) >= len(a.slots) || !a.slots[h].live {
		return nil, fmt.Errorf("handle %d: %w", h, types.ErrInvalidHandle)
	}
	return &a.slots[h], nil
}
