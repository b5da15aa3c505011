package Trees

import "cmp"

// BST is the unbalanced binary search tree. It offers exactly what AVL
// offers, but never rotates, so its shape and height depend only on the
// order of insertions; ascending keys degrade it into a list of height n-1.
// It exists as a baseline for AVL. The zero value is an empty tree.
type BST[T cmp.Ordered] struct {
	base[T]
}

// NewBST returns an empty BST.
func NewBST[T cmp.Ordered]() *BST[T] {
	return new(BST[T])
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	return u.insertRec(v, keep[T])
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	return u.removeRec(v, keep[T])
}

func (u *BST[T]) IterInsert(v T) bool {
	a, _ := u.iterInsert(v, nil, keep[T])
	return a
}

func (u *BST[T]) BufferedIterInsert(v T, st Stack[T]) (bool, Stack[T]) {
	a, st := u.iterInsert(v, st, keep[T])
	return a, st
}

// IterRemove panics with EmptyTreeError on an empty tree, as AVL.IterRemove.
func (u *BST[T]) IterRemove(v T) bool {
	a, _ := u.iterRemove(v, nil, keep[T])
	return a
}

func (u *BST[T]) BufferedIterRemove(v T, st Stack[T]) (bool, Stack[T]) {
	a, st := u.iterRemove(v, st, keep[T])
	return a, st
}

// Iterative view of u, see AVL.Iterative.
func (u *BST[T]) Iterative() Tree[T] {
	return iterView[T]{&u.base, keep[T]}
}
