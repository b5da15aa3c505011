package Trees

import "cmp"

// AVL is a binary search tree with no repeated values. It maintains balance
// through rotations by checking the heights of subtrees: after every Insert
// or Remove, |height(l)-height(r)|<=1 holds at every node. So the height D of
// the tree is less than 1.44*log2(n+2).
// Nodes don't store their heights; they are recomputed on demand, which makes
// each rebalance step O(size of subtree) rather than O(1).
// Two strategies are offered that result in identical trees for identical
// sequences of operations: Insert and Remove walk down and back up through
// the call stack and measure heights recursively; IterInsert and IterRemove
// record the ancestors on an explicit stack and measure heights level by
// level. The zero value is an empty tree.
type AVL[T cmp.Ordered] struct {
	base[T]
}

// NewAVL returns an empty AVL.
func NewAVL[T cmp.Ordered]() *AVL[T] {
	return new(AVL[T])
}

// Insert [Tree.Insert]. Recursive.
// Time: O(n)
func (u *AVL[T]) Insert(v T) bool {
	return u.insertRec(v, balanceRec[T])
}

// Remove [Tree.Remove]. Recursive. Removing from an empty tree returns false.
// Time: O(n)
func (u *AVL[T]) Remove(v T) bool {
	return u.removeRec(v, balanceRec[T])
}

// IterInsert is Insert implemented iteratively.
func (u *AVL[T]) IterInsert(v T) bool {
	a, _ := u.iterInsert(v, nil, balanceIter[T])
	return a
}

// BufferedIterInsert is IterInsert using st as the ancestor stack. st is
// returned, possibly grown, for reuse.
func (u *AVL[T]) BufferedIterInsert(v T, st Stack[T]) (bool, Stack[T]) {
	a, st := u.iterInsert(v, st, balanceIter[T])
	return a, st
}

// IterRemove is Remove implemented iteratively. Unlike Remove, the tree
// mustn't be empty: it panics with EmptyTreeError. A missing key on a
// non-empty tree returns false.
func (u *AVL[T]) IterRemove(v T) bool {
	a, _ := u.iterRemove(v, nil, balanceIter[T])
	return a
}

// BufferedIterRemove is IterRemove using st as the ancestor stack.
func (u *AVL[T]) BufferedIterRemove(v T, st Stack[T]) (bool, Stack[T]) {
	a, st := u.iterRemove(v, st, balanceIter[T])
	return a, st
}

// Iterative view of u. Insert and Remove of the view are IterInsert and
// IterRemove of u, other receivers are shared.
func (u *AVL[T]) Iterative() Tree[T] {
	return iterView[T]{&u.base, balanceIter[T]}
}

// balanced reports the height of the subtree rooting at n and whether every
// node in it has a balance factor in [-1,1].
func balanced[T cmp.Ordered](n *node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, lok := balanced(n.l)
	rh, rok := balanced(n.r)
	return 1 + max(lh, rh), lok && rok && lh-rh <= 1 && rh-lh <= 1
}

// Balanced reports whether every node satisfies the AVL condition.
// Time: O(n)
func (u *AVL[T]) Balanced() bool {
	_, ok := balanced(u.root)
	return ok
}
