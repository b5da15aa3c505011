package Trees

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// base holds the root and the queries shared by AVL and BST. The queries
// only read the tree, so they don't care whether it's balanced.
type base[T cmp.Ordered] struct {
	root   *node[T]
	sz     uint
	levels uint
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
// Time: O(n)
func (u *base[T]) Height() int {
	return heightRec(u.root)
}

// Levels [Tree.Levels]
func (u *base[T]) Levels() uint {
	return u.levels
}

// ResetLevels sets the Levels counter back to 0.
func (u *base[T]) ResetLevels() {
	u.levels = 0
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// path appends the ancestors of the node holding v to st, from the root
// downwards, and returns that node. The node is nil if v isn't in the tree.
// Time: O(D)
func (u *base[T]) path(v T, st []*node[T]) ([]*node[T], *node[T]) {
	cur := u.root
	for cur != nil && cur.v != v {
		st = append(st, cur)
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return st, cur
}

// Successor [Tree.Successor]
// Returns (0,false) if v isn't in the tree.
// Time: O(D); Space: O(D)
func (u *base[T]) Successor(v T) (T, bool) {
	st, n := u.path(v, nil)
	if n == nil {
		return *new(T), false
	}
	if s := next(n, st); s != nil {
		return s.v, true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Returns (0,false) if v isn't in the tree.
// Time: O(D); Space: O(D)
func (u *base[T]) Predecessor(v T) (T, bool) {
	st, n := u.path(v, nil)
	if n == nil {
		return *new(T), false
	}
	if p := prev(n, st); p != nil {
		return p.v, true
	}
	return *new(T), false
}

// InOrder [Tree.InOrder]
// Time: amortized O(1) per key. Space: O(D)
func (u *base[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var st []*node[T]
		for cur := u.root; cur != nil || len(st) > 0; cur = cur.r {
			for ; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *base[T]) Corrupt() bool {
	first := true
	var last T
	for v := range u.InOrder() {
		if !first && v <= last {
			return true
		}
		first, last = false, v
	}
	return false
}

// String of the keys in order, separated by single spaces.
func (u *base[T]) String() string {
	var sb strings.Builder
	for v := range u.InOrder() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
