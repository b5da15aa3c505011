package Trees

import "cmp"

// Sort s using t: every element is inserted, then the Minimum is taken and
// removed until t is empty. Equal elements collapse into one, so the sorted
// distinct elements are returned as a prefix of s. t must be empty, otherwise
// it panics with NotEmptyError.
// Time: O(n*(insert+remove))
func Sort[T cmp.Ordered](s []T, t Tree[T]) []T {
	if sz := t.Size(); sz != 0 {
		panic(NotEmptyError{sz})
	}
	for _, v := range s {
		t.Insert(v)
	}
	i := 0
	for v, ok := t.Minimum(); ok; v, ok = t.Minimum() {
		s[i] = v
		i++
		t.Remove(v)
	}
	return s[:i]
}
