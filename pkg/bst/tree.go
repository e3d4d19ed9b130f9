package bst

import (
	"cmp"
	"io"
	"log/slog"
)

// Tree is an unbalanced binary search tree holding each element at most once.
// The zero value is not usable, create trees with New or NewWithComparator.
type Tree[T any] struct {
	root    *node[T]
	compare func(a, b T) int
	logger  *slog.Logger
}

// New creates an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option[T]) *Tree[T] {
	return NewWithComparator(cmp.Compare[T], opts...)
}

// NewWithComparator creates an empty tree ordered by compare.
// compare(a, b) must be negative when a < b, zero when equal and positive when a > b,
// and must describe a total order, otherwise the tree invariant can not hold.
func NewWithComparator[T any](compare func(a, b T) int, opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{
		compare: compare,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		t = opt(t)
	}
	if t.compare == nil {
		panic("[BUG] NewWithComparator: comparator must not be nil")
	}
	return t
}

// IsEmpty reports whether the tree holds no element.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear drops every element.
func (t *Tree[T]) Clear() {
	t.root = nil
}

// Contains reports whether an element equal to value is stored.
func (t *Tree[T]) Contains(value T) bool {
	return t.contains(t.root, value)
}

func (t *Tree[T]) contains(n *node[T], value T) bool {
	if n == nil {
		return false
	}
	switch c := t.compare(value, n.value); {
	case c < 0:
		return t.contains(n.children[left], value)
	case c > 0:
		return t.contains(n.children[right], value)
	default:
		return true
	}
}

// Insert adds value to the tree. Inserting a value that is already stored does nothing.
func (t *Tree[T]) Insert(value T) {
	t.root = t.insert(t.root, value)
}

// insert returns the root of the subtree after the insertion, the caller reattaches it.
func (t *Tree[T]) insert(n *node[T], value T) *node[T] {
	if n == nil {
		t.logger.Debug("insert leaf", "value", value)
		return newLeaf(value)
	}
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.children[left] = t.insert(n.children[left], value)
	case c > 0:
		n.children[right] = t.insert(n.children[right], value)
	default:
		// duplicate, the set keeps the stored element
		t.logger.Debug("insert ignored duplicate", "value", value)
	}
	return n
}

// Remove deletes the element equal to value. Removing a value that is not stored does nothing.
//
// A node with two children takes the value of its in-order successor (the minimum of its
// right subtree), and the successor is then removed from the right subtree. The successor
// never has a left child, so that second removal always ends in the single child case.
func (t *Tree[T]) Remove(value T) {
	t.root = t.remove(t.root, value)
}

// remove returns the root of the subtree after the removal, the caller reattaches it.
func (t *Tree[T]) remove(n *node[T], value T) *node[T] {
	if n == nil {
		// not stored
		return nil
	}
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.children[left] = t.remove(n.children[left], value)
	case c > 0:
		n.children[right] = t.remove(n.children[right], value)
	case n.hasBothChildren():
		successor := n.children[right].extreme(left).value
		t.logger.Debug("promote successor", "removed", n.value, "successor", successor)
		n.value = successor
		n.children[right] = t.remove(n.children[right], successor)
	default:
		t.logger.Debug("remove node", "value", n.value)
		return n.onlyChild()
	}
	return n
}

// Min returns the smallest element, or ErrEmptyContainer if the tree is empty.
func (t *Tree[T]) Min() (T, error) {
	return t.extreme(left)
}

// Max returns the largest element, or ErrEmptyContainer if the tree is empty.
func (t *Tree[T]) Max() (T, error) {
	return t.extreme(right)
}

func (t *Tree[T]) extreme(side childPos) (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return t.root.extreme(side).value, nil
}

// Walk calls f for every element in the given order until f returns false.
// f must not modify the tree.
func (t *Tree[T]) Walk(order Order, f func(value T) bool) {
	t.root.walk(order, f)
}

// Traverse returns every element in the given order.
// The slice is freshly allocated on each call and is empty, not nil, for an empty tree.
func (t *Tree[T]) Traverse(order Order) []T {
	values := []T{}
	t.Walk(order, func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Len returns the number of stored elements. It visits every node.
func (t *Tree[T]) Len() int {
	count := 0
	t.Walk(PreOrder, func(T) bool {
		count++
		return true
	})
	return count
}

// Height returns the number of nodes on the longest path from the root to a leaf.
func (t *Tree[T]) Height() int {
	return t.root.height()
}
