package bst

import (
	"fmt"
	"strings"
)

// Order selects the sequence in which Walk and Traverse visit the elements.
//
// Orders:
//   - InOrder: left subtree, element, right subtree. Yields ascending order.
//   - PreOrder: element, left subtree, right subtree.
//   - PostOrder: left subtree, right subtree, element.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

// Orders lists every supported order, in the order they are usually reported.
var Orders = []Order{InOrder, PreOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "in", "pre", "post" and their "inorder" style long forms, case insensitive.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "in", "inorder", "in-order":
		return InOrder, nil
	case "pre", "preorder", "pre-order":
		return PreOrder, nil
	case "post", "postorder", "post-order":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("unknown traversal order %q", name)
}

// walk visits the subtree rooted at n in the given order.
// It returns false as soon as visit does, so the caller can stop early.
func (n *node[T]) walk(order Order, visit func(T) bool) bool {
	if n == nil {
		return true
	}

	switch order {
	case InOrder:
		return n.childAt(left).walk(order, visit) &&
			visit(n.value) &&
			n.childAt(right).walk(order, visit)
	case PreOrder:
		return visit(n.value) &&
			n.childAt(left).walk(order, visit) &&
			n.childAt(right).walk(order, visit)
	case PostOrder:
		return n.childAt(left).walk(order, visit) &&
			n.childAt(right).walk(order, visit) &&
			visit(n.value)
	default:
		panic(fmt.Sprintf("[BUG] walk: unsupported traversal order %s", order))
	}
}
