package suite

import (
	"errors"
	"iter"
)

// ErrNilChild is returned by Tree.Add when the candidate child is nil and
// therefore cannot satisfy the tree contract.
var ErrNilChild = errors.New("cannot add nil child to tree")

// Tree is an ordered n-ary tree node. Each element owns its children
// exclusively and holds one non-owning back-reference to its parent, used
// for traversal and upward event bubbling only.
type Tree[T any] struct {
	// Value is the payload carried by this tree position.
	Value T

	parent   *Tree[T]
	children []*Tree[T]
}

// NewTree creates a root tree node carrying v.
func NewTree[T any](v T) *Tree[T] {
	return &Tree[T]{Value: v}
}

// Add links child under t, appending it to the ordered child list, and
// returns the child. Fails with ErrNilChild when child is nil.
func (t *Tree[T]) Add(child *Tree[T]) (*Tree[T], error) {
	if child == nil {
		return nil, ErrNilChild
	}
	child.parent = t
	t.children = append(t.children, child)
	return child, nil
}

// Parent returns the owning parent, or nil for the root.
func (t *Tree[T]) Parent() *Tree[T] { return t.parent }

// Children returns the ordered child list. The slice is shared with the
// tree; callers must not modify it.
func (t *Tree[T]) Children() []*Tree[T] { return t.children }

// Level returns the distance from the root; the root is level 0.
func (t *Tree[T]) Level() int {
	level := 0
	for p := t.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// Root walks parent links to the ancestor with no parent.
func (t *Tree[T]) Root() *Tree[T] {
	root := t
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Parents returns the ordered ancestor list, nearest first. A root yields
// an empty list.
func (t *Tree[T]) Parents() []*Tree[T] {
	var out []*Tree[T]
	for p := t.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// All returns a lazy depth-first pre-order sequence over t and all of its
// descendants. The sequence is restartable: each range restarts from t.
func (t *Tree[T]) All() iter.Seq[*Tree[T]] {
	return func(yield func(*Tree[T]) bool) {
		t.walk(yield)
	}
}

func (t *Tree[T]) walk(yield func(*Tree[T]) bool) bool {
	if !yield(t) {
		return false
	}
	for _, c := range t.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}
