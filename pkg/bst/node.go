package bst

// is an alias for int used to index the children of a node.
type childPos = int

// Positions of the two children of a node.
const (
	left  childPos = 0
	right childPos = 1
)

// node holds one element and owns up to two subtrees.
// There is no parent link: mutations hand the (possibly new) subtree root back to the caller.
type node[T any] struct {
	value    T
	children [2]*node[T]
}

func newLeaf[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// returns the child at the given position, or nil
func (n *node[T]) childAt(at childPos) *node[T] {
	return n.children[at]
}

// hasBothChildren reports whether the node needs successor replacement on removal.
func (n *node[T]) hasBothChildren() bool {
	return n.children[left] != nil && n.children[right] != nil
}

// onlyChild returns the single child of the node, or nil if it is a leaf.
// it must not be called on a node with two children
func (n *node[T]) onlyChild() *node[T] {
	if n.children[left] != nil {
		return n.children[left]
	}
	return n.children[right]
}

// extreme descends strictly towards one side until there is no child on that side.
// extreme(left) is the minimum of the subtree, extreme(right) its maximum.
func (n *node[T]) extreme(side childPos) *node[T] {
	current := n
	for current.children[side] != nil {
		current = current.children[side]
	}
	return current
}

// height of the subtree rooted at n, counted in nodes
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.children[left].height(), n.children[right].height())
}
