package sbtree

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// A node in the SBTree
// The zero value is meaningless.
type node[T cmp.Ordered, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	sz   S
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in SBTree. The value of this node has
// both node.l, node.r = itself, and sz=0. v is the zero value of T
type nodePtr[T cmp.Ordered, S constraints.Unsigned] *node[T, S]

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content. Sizes of both nodes involved are kept up to date.
// Time: O(1); Space: O(1)
func rotateLeft[T cmp.Ordered, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = rc
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T cmp.Ordered, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = lc
}

// InvalidSliceError is the panic value of BuildSBTree when the slice isn't
// strictly ascending at index I.
type InvalidSliceError[T cmp.Ordered] struct {
	I          int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("sbtree: slice isn't strictly ascending at %d: %v then %v", e.I, e.Prev, e.Next)
}
