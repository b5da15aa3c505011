package Trees

import "cmp"

// unwind applies fix bottom-up to the ancestors recorded in st, relinking
// each fixed subtree into the next ancestor, and finally reseats the root.
// st[0] must be the root.
func (u *base[T]) unwind(st []*node[T], fix func(*node[T]) *node[T]) {
	cur := st[len(st)-1]
	for i := len(st) - 2; i > -1; i-- {
		if p := st[i]; p.l == cur {
			p.l = fix(cur)
			cur = p
		} else {
			p.r = fix(cur)
			cur = p
		}
	}
	u.root = fix(cur)
}

// iterInsert v by descending from the root while recording every ancestor
// in st, then unwinding st. st is truncated first and returned so the
// caller can reuse its memory; the tree never keeps it.
// Time: O(D) calls to fix; Space: O(D)
func (u *base[T]) iterInsert(v T, st []*node[T], fix func(*node[T]) *node[T]) (bool, []*node[T]) {
	st = st[:0]
	if u.root == nil {
		u.root = &node[T]{v: v}
		u.sz++
		return true, st
	}
	for cur := u.root; ; {
		u.levels++
		st = append(st, cur)
		if v < cur.v {
			if cur.l == nil {
				cur.l = &node[T]{v: v}
				break
			}
			cur = cur.l
		} else if v == cur.v {
			return false, st
		} else {
			if cur.r == nil {
				cur.r = &node[T]{v: v}
				break
			}
			cur = cur.r
		}
	}
	u.unwind(st, fix)
	u.sz++
	return true, st
}

// iterRemove v by descending from the root while recording every ancestor
// in st. A node with zero or one child is spliced out of its parent. A node
// with two children takes the key of its in-order successor, stays on st,
// and the descent continues into its right subtree to splice out the
// successor's original node. st is unwound afterwards.
// The tree mustn't be empty, otherwise it panics with EmptyTreeError.
// Time: O(D) calls to fix; Space: O(D)
func (u *base[T]) iterRemove(v T, st []*node[T], fix func(*node[T]) *node[T]) (bool, []*node[T]) {
	if u.root == nil {
		panic(EmptyTreeError{"iterative remove"})
	}
	st = st[:0]
	for cur := u.root; cur != nil; {
		u.levels++
		if v < cur.v {
			st = append(st, cur)
			cur = cur.l
			continue
		} else if v > cur.v {
			st = append(st, cur)
			cur = cur.r
			continue
		}
		if cur.l != nil && cur.r != nil {
			cur.v = next(cur, nil).v
			v = cur.v
			st = append(st, cur)
			cur = cur.r
			continue
		}
		child := cur.l
		if child == nil {
			child = cur.r
		}
		if len(st) == 0 { //cur is the root
			u.root = child
		} else {
			if p := st[len(st)-1]; p.l == cur {
				p.l = child
			} else {
				p.r = child
			}
			u.unwind(st, fix)
		}
		u.sz--
		return true, st
	}
	return false, st
}

// iterView routes Insert and Remove of a tree to the iterative strategy.
type iterView[T cmp.Ordered] struct {
	*base[T]
	fix func(*node[T]) *node[T]
}

// Insert [Tree.Insert]. Iterative.
func (u iterView[T]) Insert(v T) bool {
	a, _ := u.iterInsert(v, nil, u.fix)
	return a
}

// Remove [Tree.Remove]. Iterative.
// Panics with EmptyTreeError on an empty tree.
func (u iterView[T]) Remove(v T) bool {
	a, _ := u.iterRemove(v, nil, u.fix)
	return a
}
