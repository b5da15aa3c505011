package Trees

import (
	"cmp"

	"github.com/g-m-twostay/avltrees/Queues"
)

// A node in the trees. It carries no height or balance information, those
// are recomputed from the subtrees whenever they are needed.
type node[T cmp.Ordered] struct {
	v    T
	l, r *node[T]
}

// rotateLeft lifts n.r into the place of n and returns it. n.r mustn't be nil.
// The caller relinks the returned node into the parent of n.
//
//	  n              rc
//	 / \            /  \
//	a   rc   ->    n    c
//	   /  \       / \
//	  b    c     a   b
//
// Time: O(1); Space: O(1)
func rotateLeft[T cmp.Ordered](n *node[T]) *node[T] {
	rc := n.r
	n.r = rc.l
	rc.l = n
	return rc
}

// rotateRight lifts n.l into the place of n and returns it. n.l mustn't be nil.
// Mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T cmp.Ordered](n *node[T]) *node[T] {
	lc := n.l
	n.l = lc.r
	lc.r = n
	return lc
}

// heightRec of the subtree rooting at n, -1 when n is nil. Recursive.
// Time: O(size of subtree)
func heightRec[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(heightRec(n.l), heightRec(n.r))
}

// heightIter is heightRec computed breadth first: it counts the levels of the
// subtree rooting at n without growing the call stack. q is scratch memory,
// it's cleared before use and left empty.
// Time: O(size of subtree); Space: O(width of subtree)
func heightIter[T cmp.Ordered](n *node[T], q Queues.Queue[*node[T]]) (h int) {
	if n == nil {
		return -1
	}
	q.Clear()
	q.Push(n)
	for h = -1; !q.Empty(); h++ {
		for k := q.Size(); k > 0; k-- {
			c, _ := q.Pop()
			if c.l != nil {
				q.Push(c.l)
			}
			if c.r != nil {
				q.Push(c.r)
			}
		}
	}
	return
}

// balanceFactor is height(n.l)-height(n.r). Positive means left heavy.
func balanceFactor[T cmp.Ordered](n *node[T], height func(*node[T]) int) int {
	return height(n.l) - height(n.r)
}

// rebalance n if its balance factor left [-1,1], with at most two rotations.
// It returns the root of the subtree that now occupies the place of n.
func rebalance[T cmp.Ordered](n *node[T], height func(*node[T]) int) *node[T] {
	if n == nil {
		return nil
	}
	if bf := balanceFactor(n, height); bf > 1 {
		if balanceFactor(n.l, height) <= -1 { //left-right
			n.l = rotateLeft(n.l)
		}
		return rotateRight(n)
	} else if bf < -1 {
		if balanceFactor(n.r, height) >= 1 { //right-left
			n.r = rotateRight(n.r)
		}
		return rotateLeft(n)
	}
	return n
}

// balanceRec is rebalance driven by heightRec; used by the recursive strategy.
func balanceRec[T cmp.Ordered](n *node[T]) *node[T] {
	return rebalance(n, heightRec[T])
}

// balanceIter is rebalance driven by heightIter; used by the iterative strategy.
// Every height evaluated during one call shares a single queue.
func balanceIter[T cmp.Ordered](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	return rebalance(n, func(c *node[T]) int {
		return heightIter(c, q)
	})
}

// keep is the fix-up of the unbalanced trees.
func keep[T cmp.Ordered](n *node[T]) *node[T] {
	return n
}

func leftmost[T cmp.Ordered](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func rightmost[T cmp.Ordered](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next is the in-order successor of n, given st, the ancestors of n from the
// root downwards. st is only read when n has no right subtree. Returns nil if
// n holds the largest key.
func next[T cmp.Ordered](n *node[T], st []*node[T]) *node[T] {
	if n.r != nil {
		return leftmost(n.r)
	}
	for i := len(st) - 1; i > -1; i-- {
		if st[i].v > n.v {
			return st[i]
		}
	}
	return nil
}

// prev is the mirror of next.
func prev[T cmp.Ordered](n *node[T], st []*node[T]) *node[T] {
	if n.l != nil {
		return rightmost(n.l)
	}
	for i := len(st) - 1; i > -1; i-- {
		if st[i].v < n.v {
			return st[i]
		}
	}
	return nil
}

// Stack is reusable scratch memory for the ancestor stack of the iterative
// operations. Its contents are meaningless between calls.
type Stack[T cmp.Ordered] []*node[T]
