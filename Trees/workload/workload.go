// Package workload generates the key sequences fed to the trees when
// comparing them.
package workload

import (
	"math/rand"

	"github.com/alphadose/haxmap"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Names of the workloads understood by Get.
const (
	NameRandom    = "random"
	NameSorted    = "sorted"
	NameAscending = "ascending"
)

// Names lists the workloads in the order they are reported.
var Names = []string{NameRandom, NameSorted, NameAscending}

// Random returns n distinct pseudo-random ints drawn from r, in the order
// they were drawn.
func Random(n int, r *rand.Rand) []int {
	seen := haxmap.New[int, struct{}](uintptr(max(n, 8)))
	out := make([]int, 0, n)
	for len(out) < n {
		v := r.Int()
		if _, loaded := seen.GetOrSet(v, struct{}{}); !loaded {
			out = append(out, v)
		}
	}
	return out
}

// Sorted returns n, n-1, ..., 1. Fed in this order an unbalanced tree
// degrades into a list.
func Sorted[T constraints.Integer](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(n - i)
	}
	return out
}

// Ascending returns 1, 2, ..., n.
func Ascending[T constraints.Integer](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// Get the workload called name of size n. r is only used by random.
func Get(name string, n int, r *rand.Rand) ([]int, error) {
	switch name {
	case NameRandom:
		return Random(n, r), nil
	case NameSorted:
		return Sorted[int](n), nil
	case NameAscending:
		return Ascending[int](n), nil
	}
	return nil, errors.Errorf("unknown workload %q", name)
}
