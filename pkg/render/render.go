// Package render converts between text lines and tree elements: it parses whitespace
// separated integers and renders traversals in the legacy "e1 e2 ... en " form.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bcolb/searchtree/pkg/bst"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenCount     = errors.New("unexpected token count")
)

// Sequence renders values separated by single spaces, with a trailing space after the last one.
// An empty input renders as "".
//
//	render.Sequence([]int{3, 5, 7}) // "3 5 7 "
func Sequence[T any](values []T) string {
	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%v ", v)
	}
	return sb.String()
}

// Tree renders a traversal of t in the given order.
func Tree[T any](t *bst.Tree[T], order bst.Order) string {
	return Sequence(t.Traverse(order))
}

// Ints parses every whitespace separated token of line as a base 10 integer.
// A blank line yields an empty slice.
func Ints(line string) ([]int, error) {
	tokens := strings.Fields(line)
	values := make([]int, 0, len(tokens))
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformedToken, i+1, token)
		}
		values = append(values, v)
	}
	return values, nil
}

// Int parses a line holding exactly one integer.
func Int(line string) (int, error) {
	values, err := Ints(line)
	if err != nil {
		return 0, err
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("%w: expected 1 integer, found %d", ErrTokenCount, len(values))
	}
	return values[0], nil
}

// Normalize strips trailing whitespace so renderings compare equal with or without the
// legacy trailing separator.
func Normalize(rendered string) string {
	return strings.TrimRight(rendered, " \t\r\n")
}
