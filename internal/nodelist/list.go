package nodelist

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/nodelist/internal/report"
	"github.com/mesh-intelligence/nodelist/pkg/types"
)

// List is a singly linked list of arena nodes. The zero value is not
// usable; call New.
type List struct {
	arena  *Arena
	head   Handle
	length int
}

// New returns an empty list whose nodes live in arena.
func New(arena *Arena) *List {
	return &List{arena: arena, head: Nil}
}

// Head returns the handle of the first node, or Nil when the list is empty.
func (l *List) Head() Handle { return l.head }

// Len returns the number of nodes in the list.
func (l *List) Len() int { return l.length }

// Empty reports whether the list has no nodes.
func (l *List) Empty() bool { return l.head == Nil }

// Append links h after the current tail, or makes it the head of an empty
// list. The walk from head to tail is linear in the list length.
// The list takes ownership of h; a handle can be appended only once.
func (l *List) Append(h Handle) error {
	s, err := l.arena.lookup(h)
	if err != nil {
		return fmt.Errorf("append: %w", err)
	}
	if s.linked {
		return fmt.Errorf("append %d: %w", h, types.ErrAlreadyLinked)
	}

	s.linked = true
	s.next = Nil
	l.length++

	if l.head == Nil {
		l.head = h
		return nil
	}

	cur := l.head
	for l.arena.slots[cur].next != Nil {
		cur = l.arena.slots[cur].next
	}
	l.arena.slots[cur].next = h
	return nil
}

// Walk calls fn for every node from head to tail. It stops at the first
// error fn returns and returns that error.
func (l *List) Walk(fn func(types.Node) error) error {
	for cur := l.head; cur != Nil; cur = l.arena.slots[cur].next {
		if err := fn(l.arena.slots[cur].node); err != nil {
			return err
		}
	}
	return nil
}

// Nodes returns copies of the list nodes in insertion order.
func (l *List) Nodes() []types.Node {
	nodes := make([]types.Node, 0, l.length)
	_ = l.Walk(func(n types.Node) error {
		nodes = append(nodes, n)
		return nil
	})
	return nodes
}

// PrintAll writes one canonical line per node to w in insertion order.
// It does not modify the list.
func (l *List) PrintAll(w io.Writer) error {
	return l.Walk(func(n types.Node) error {
		return report.WriteNode(w, n)
	})
}

// DestroyAll releases every node in traversal order and resets the list to
// empty. It returns the number of nodes released. Destroying an empty list
// is a no-op.
func (l *List) DestroyAll() (int, error) {
	released := 0
	cur := l.head
	for cur != Nil {
		next := l.arena.slots[cur].next
		if err := l.arena.release(cur); err != nil {
			l.head = next
			l.length -= released
			return released, fmt.Errorf("destroy: %w", err)
		}
		released++
		cur = next
	}
	l.head = Nil
	l.length = 0
	return released, nil
}
