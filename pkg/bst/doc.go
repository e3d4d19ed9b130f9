// ## Overview
// Package bst implements a generic, unbalanced binary search tree used as an ordered set.
// Any element type with a total order can be stored: types satisfying cmp.Ordered work
// out of the box through New, everything else through NewWithComparator.
//
// Equal elements are stored once; inserting a present element and removing an absent one
// are both no-ops. Removal of a node with two children promotes its in-order successor.
//
// ## Example usage:
//
//	tree := bst.New[int]()
//	for _, v := range []int{5, 3, 7, 1, 4} {
//		tree.Insert(v)
//	}
//
//	fmt.Println(tree.Traverse(bst.InOrder))  // Output: [1 3 4 5 7]
//	fmt.Println(tree.Traverse(bst.PreOrder)) // Output: [5 3 1 4 7]
//
//	tree.Remove(3)
//	fmt.Println(tree.Contains(3)) // Output: false
//
//	min, err := tree.Min()
//	if errors.Is(err, bst.ErrEmptyContainer) {
//		// nothing stored
//	}
//
// ## Depth
//
// No rebalancing is done, so the depth of every operation is the height of the tree.
// Sorted input produces a tree whose height equals its size; shuffle the input
// when that matters.
//
// A Tree is not safe for concurrent use. Callers that share one must serialize
// Insert, Remove and Clear themselves; read operations may run in parallel only while
// no mutation is in flight.
package bst
