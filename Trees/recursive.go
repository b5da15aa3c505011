package Trees

// insert v into the subtree rooting at cur recursively and return the new
// root of that subtree. fix is applied to every node on the path as the
// recursion unwinds. A failed insertion happens when v is already in the
// subtree, in which case nothing is changed and it returns false.
// Time: O(D) calls to fix
func (u *base[T]) insert(cur *node[T], v T, fix func(*node[T]) *node[T]) (*node[T], bool) {
	if cur == nil {
		return &node[T]{v: v}, true
	}
	u.levels++
	inserted := false
	if v < cur.v {
		cur.l, inserted = u.insert(cur.l, v, fix)
	} else if v == cur.v {
		return cur, false
	} else {
		cur.r, inserted = u.insert(cur.r, v, fix)
	}
	if !inserted {
		return cur, false
	}
	return fix(cur), true
}

// remove v from the subtree rooting at cur recursively and return the new
// root of that subtree. A node with two children takes the key of its
// in-order successor, whose original node is then removed from the right
// subtree. Returns false if v isn't in the subtree.
// Time: O(D) calls to fix
func (u *base[T]) remove(cur *node[T], v T, fix func(*node[T]) *node[T]) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	u.levels++
	deleted := false
	if v < cur.v {
		cur.l, deleted = u.remove(cur.l, v, fix)
	} else if v > cur.v {
		cur.r, deleted = u.remove(cur.r, v, fix)
	} else if cur.l == nil {
		return fix(cur.r), true
	} else if cur.r == nil {
		return fix(cur.l), true
	} else {
		cur.v = next(cur, nil).v
		cur.r, deleted = u.remove(cur.r, cur.v, fix)
	}
	if !deleted {
		return cur, false
	}
	return fix(cur), true
}

func (u *base[T]) insertRec(v T, fix func(*node[T]) *node[T]) (inserted bool) {
	if u.root, inserted = u.insert(u.root, v, fix); inserted {
		u.sz++
	}
	return
}

func (u *base[T]) removeRec(v T, fix func(*node[T]) *node[T]) (deleted bool) {
	if u.root, deleted = u.remove(u.root, v, fix); deleted {
		u.sz--
	}
	return
}
