package bst

import "log/slog"

type Option[T any] func(*Tree[T]) *Tree[T]

// WithComparator replaces the three-way comparison used to order elements.
// compare(a, b) must be negative when a < b, zero when equal and positive when a > b.
func WithComparator[T any](compare func(a, b T) int) Option[T] {
	return func(t *Tree[T]) *Tree[T] {
		t.compare = compare
		return t
	}
}

// WithLogger attaches a logger that receives debug records of structural changes.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(t *Tree[T]) *Tree[T] {
		t.logger = logger
		return t
	}
}
