package bst

import "errors"

// ErrEmptyContainer is returned by Min and Max when the tree holds no element.
var ErrEmptyContainer = errors.New("empty container")
