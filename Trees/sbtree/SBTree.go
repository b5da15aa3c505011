// Package sbtree is the size balanced tree, kept next to the AVL trees as a
// balanced container that rotates by comparing subtree sizes instead of
// heights.
package sbtree

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// SBTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the sizes of subtrees.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr.
// This tree needs to keep track of the sizes of each subtree, so the additional
// memory cost is size(S)*n.
// The worst case height of the tree is less than f(n)=1.44*log2(n+1.5)-1.33. So the height D
// of the tree is of O(log n). However, on average, D=log2(N).
// S shouldn't be any type that overflows when converted to uint, and should
// be a wide upperbound for the size of the tree.
// It implements Trees.Tree.
type SBTree[T cmp.Ordered, S constraints.Unsigned] struct {
	root   nodePtr[T, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	levels uint
}

// MakeSBTree returns a SBTree satisfying the above definitions for nilPtr, root, and types.
// SBTree shouldn't be created directly using struct literal.
func MakeSBTree[T cmp.Ordered, S constraints.Unsigned]() *SBTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	return &SBTree[T, S]{root: z, nilPtr: z}
}

// BuildSBTree builds a SBTree using the given sorted slice recursively. This is faster than
// repeatedly calling Insert.
// The given slice must be strictly ascending. If safe==true, this function checks it and
// panics with InvalidSliceError otherwise. If safe==false it is up to the caller, an unsorted
// slice results in a corrupt tree.
// Time: O(n).
func BuildSBTree[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *SBTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1] >= sli[i] {
				panic(InvalidSliceError[T]{i, sli[i-1], sli[i]})
			}
		}
	}
	u := MakeSBTree[T, S]()
	var build func([]T) nodePtr[T, S]
	build = func(s []T) nodePtr[T, S] {
		if len(s) == 0 {
			return u.nilPtr
		}
		mid := len(s) >> 1
		return &node[T, S]{s[mid], build(s[:mid]), build(s[mid+1:]), S(len(s))}
	}
	u.root = build(sli)
	return u
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *SBTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// maintain the subtree rooting at cur recursively to satisfy the SBTree properties
// using rotateLeft and rotateRight.
// rightBigger indicates whether the right subtree may have outgrown the left,
// this is for removing redundant size comparisons.
// curPtr is passed by reference.
// Time: amortized O(1)
func (u *SBTree[T, S]) maintain(curPtr *nodePtr[T, S], rightBigger bool) {
	cur := *curPtr
	if rc, lc := cur.r, cur.l; rightBigger {
		if rc.r.sz > lc.sz {
			rotateLeft(curPtr)
		} else if rc.l.sz > lc.sz {
			rotateRight(&cur.r)
			rotateLeft(curPtr)
		} else {
			return
		}
	} else {
		if lc.l.sz > rc.sz {
			rotateRight(curPtr)
		} else if lc.r.sz > rc.sz {
			rotateLeft(&cur.l)
			rotateRight(curPtr)
		} else {
			return
		}
	}
	u.maintain(&cur.l, false)
	u.maintain(&cur.r, true)
	u.maintain(curPtr, false)
	u.maintain(curPtr, true)
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false.
func (u *SBTree[T, S]) insert(curPtr *nodePtr[T, S], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1}
		return true
	}
	u.levels++
	inserted := false
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if v == cur.v {
		return false
	} else {
		inserted = u.insert(&cur.r, v)
	}
	if inserted {
		cur.sz++
		u.maintain(curPtr, v > cur.v)
	}
	return inserted
}

// Insert [Trees.Tree.Insert]. Recursive.
// Time: O(D)
func (u *SBTree[T, S]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if v isn't in the subtree. A node with
// two children takes the value of its in-order successor, whose node is
// spliced out of the right subtree. Note that remove doesn't call maintain,
// this means that D isn't O(f(n)) after calling removal, but instead O(f(i))
// where i is the largest size the tree had.
// Time: O(D)
func (u *SBTree[T, S]) remove(curPtr *nodePtr[T, S], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	}
	u.levels++
	deleted := false
	if v < cur.v {
		deleted = u.remove(&cur.l, v)
	} else if v == cur.v {
		deleted = true
		if cur.l == u.nilPtr {
			*curPtr = cur.r
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
		} else {
			t := &cur.r
			for (*t).l != u.nilPtr {
				(*t).sz--
				t = &(*t).l
			}
			cur.v = (*t).v
			*t = (*t).r
		}
	} else {
		deleted = u.remove(&cur.r, v)
	}
	if deleted {
		cur.sz--
	}
	return deleted
}

// Remove [Trees.Tree.Remove]. Recursive.
// Time: O(D)
func (u *SBTree[T, S]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Has [Trees.Tree.Has]
// Time: O(D); Space: O(1)
func (u SBTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
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

// Minimum [Trees.Tree.Minimum]
// Time: O(D); Space: O(1)
func (u SBTree[T, S]) Minimum() (T, bool) {
	cur := u.root
	if cur == u.nilPtr {
		return cur.v, false
	}
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Trees.Tree.Maximum]
// Time: O(D); Space: O(1)
func (u SBTree[T, S]) Maximum() (T, bool) {
	cur := u.root
	if cur == u.nilPtr {
		return cur.v, false
	}
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Trees.Tree.Predecessor]
// Returns (0,false) if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u SBTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p, found := u.root, u.nilPtr, false
	for cur != u.nilPtr {
		if v <= cur.v {
			found = found || v == cur.v
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if !found || p == u.nilPtr {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Trees.Tree.Successor]
// Time: O(D); Space: O(1)
func (u SBTree[T, S]) Successor(v T) (T, bool) {
	cur, p, found := u.root, u.nilPtr, false
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			found = found || v == cur.v
			cur = cur.r
		}
	}
	if !found || p == u.nilPtr {
		return *new(T), false
	}
	return p.v, true
}

// Kth smallest element, 1<=k<=Size(). Returns (0,false) for any other k.
// This function utilizes the fact that SBTree balances according to the
// sizes of each subtree to provide O(D) performance with very small constant.
// Time: O(D); Space: O(1)
func (u SBTree[T, S]) Kth(k uint) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	cur, t := u.root, S(k)
	for {
		if t < cur.l.sz+1 {
			cur = cur.l
		} else if t == cur.l.sz+1 {
			return cur.v, true
		} else {
			t -= cur.l.sz + 1
			cur = cur.r
		}
	}
}

// RankOf v in the tree according to in-order, 1<=r<=Size(). 0 if v isn't in
// the tree.
// Time: O(D); Space: O(1)
func (u SBTree[T, S]) RankOf(v T) uint {
	cur := u.root
	var ra S = 0
	for cur != u.nilPtr {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return uint(ra + cur.l.sz + 1)
		} else {
			ra += cur.l.sz + 1
			cur = cur.r
		}
	}
	return 0
}

// InOrder [Trees.Tree.InOrder]
// Morris traversal: right pointers of predecessors are temporarily threaded
// back to their successors. Stopping early still walks the rest of the tree
// without yielding to remove every thread.
// Time: amortized O(1) per key. Space: O(1)
func (u *SBTree[T, S]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		stopped := false
		visit := func(v T) {
			if !stopped && !yield(v) {
				stopped = true
			}
		}
		for cur := u.root; cur != u.nilPtr; {
			if cur.l == u.nilPtr {
				visit(cur.v)
				cur = cur.r
				continue
			}
			p := cur.l
			for p.r != u.nilPtr && p.r != cur {
				p = p.r
			}
			if p.r != cur {
				p.r = cur
				cur = cur.l
			} else {
				p.r = u.nilPtr
				visit(cur.v)
				cur = cur.r
			}
		}
	}
}

func (u SBTree[T, S]) height(c nodePtr[T, S]) int {
	if c == u.nilPtr {
		return -1
	}
	return 1 + max(u.height(c.l), u.height(c.r))
}

// Height [Trees.Tree.Height]. Recursive.
// Time: O(n)
func (u SBTree[T, S]) Height() int {
	return u.height(u.root)
}

// Levels [Trees.Tree.Levels]
func (u SBTree[T, S]) Levels() uint {
	return u.levels
}

// ResetLevels sets the Levels counter back to 0.
func (u *SBTree[T, S]) ResetLevels() {
	u.levels = 0
}

// sized reports whether every size field in the subtree rooting at c is the
// size of that subtree.
func (u SBTree[T, S]) sized(c nodePtr[T, S]) bool {
	if c == u.nilPtr {
		return c.sz == 0
	}
	return c.sz == c.l.sz+c.r.sz+1 && u.sized(c.l) && u.sized(c.r)
}

// Corrupt [Trees.Tree.Corrupt]
// Besides the ordering, a size field that doesn't match its subtree is
// considered corrupt.
// Time: O(n)
func (u *SBTree[T, S]) Corrupt() bool {
	if !u.sized(u.root) {
		return true
	}
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
