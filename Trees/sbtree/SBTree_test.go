package sbtree

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/avltrees/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

var _ Trees.Tree[int] = (*SBTree[int, uint])(nil)

const (
	tAddN        = 4000
	tAddValRange = 6000
)

// bound on the height of a balanced tree of size n.
func bound(n uint) int {
	return int(1.44 * math.Log2(float64(n)+2))
}

func TestSBTree_InsertRemove(t *testing.T) {
	tree := MakeSBTree[int, uint32]()
	content := hashmap.New[int, struct{}]()
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
	}
	for _, b := range a {
		fresh := content.Insert(b, struct{}{})
		if c := tree.Insert(b); c != fresh {
			t.Errorf("insert key %v returned %v, want %v", b, c, fresh)
		}
	}
	require.Equal(t, content.Len(), int(tree.Size()))
	require.False(t, tree.Corrupt())
	assert.LessOrEqual(t, tree.Height(), bound(tree.Size()))
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for i := range rg.Intn(len(a)) {
		_, in := content.Get(a[i])
		if b := tree.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		content.Del(a[i])
	}
	require.Equal(t, content.Len(), int(tree.Size()))
	require.False(t, tree.Corrupt())
	content.Range(func(k int, _ struct{}) bool {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
		return true
	})
	for v := range tree.InOrder() {
		if _, in := content.Get(v); !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
}

func TestSBTree_RemoveKeepsSuccessorSubtree(t *testing.T) {
	tree := MakeSBTree[int, uint8]()
	for _, v := range []int{2, 1, 4, 5} {
		tree.Insert(v)
	}
	require.Equal(t, 4, tree.root.r.v)
	require.Equal(t, 5, tree.root.r.r.v)
	assert.True(t, tree.Remove(2))
	assert.Equal(t, uint(3), tree.Size())
	assert.True(t, tree.Has(5))
	assert.Equal(t, []int{1, 4, 5}, slices.Collect(tree.InOrder()))
	assert.False(t, tree.Corrupt())
}

func TestSBTree_Sorted(t *testing.T) {
	tree := MakeSBTree[int, uint]()
	for v := 1 << 12; v > 0; v-- {
		tree.Insert(v)
	}
	assert.LessOrEqual(t, tree.Height(), bound(tree.Size()))
	assert.False(t, tree.Corrupt())
	v, ok := tree.Minimum()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = tree.Maximum()
	assert.True(t, ok)
	assert.Equal(t, 1<<12, v)
}

func TestSBTree_Neighbours(t *testing.T) {
	tree := BuildSBTree[int, uint]([]int{10, 20, 30, 40, 50}, true)
	for _, c := range []struct {
		v, next, prev    int
		hasNext, hasPrev bool
	}{
		{10, 20, 0, true, false},
		{30, 40, 20, true, true},
		{50, 0, 40, false, true},
		{35, 0, 0, false, false},
	} {
		n, ok := tree.Successor(c.v)
		assert.Equal(t, c.hasNext, ok, c.v)
		assert.Equal(t, c.next, n, c.v)
		p, ok := tree.Predecessor(c.v)
		assert.Equal(t, c.hasPrev, ok, c.v)
		assert.Equal(t, c.prev, p, c.v)
	}
	empty := MakeSBTree[int, uint]()
	_, ok := empty.Minimum()
	assert.False(t, ok)
	_, ok = empty.Successor(1)
	assert.False(t, ok)
	assert.Equal(t, -1, empty.Height())
}

func TestSBTree_Rank(t *testing.T) {
	keys := make([]int, 100)
	for i := range keys {
		keys[i] = 3 * i
	}
	tree := BuildSBTree[int, uint16](keys, true)
	require.False(t, tree.Corrupt())
	for i, k := range keys {
		v, ok := tree.Kth(uint(i + 1))
		assert.True(t, ok)
		assert.Equal(t, k, v)
		assert.Equal(t, uint(i+1), tree.RankOf(k))
	}
	assert.Equal(t, uint(0), tree.RankOf(1))
	_, ok := tree.Kth(0)
	assert.False(t, ok)
	_, ok = tree.Kth(101)
	assert.False(t, ok)
}

func TestBuildSBTree_Invalid(t *testing.T) {
	assert.PanicsWithValue(t, InvalidSliceError[int]{2, 5, 5}, func() {
		BuildSBTree[int, uint]([]int{1, 5, 5, 7}, true)
	})
	assert.EqualError(t, InvalidSliceError[int]{2, 5, 5}, "sbtree: slice isn't strictly ascending at 2: 5 then 5")
	assert.Equal(t, uint(0), BuildSBTree[int, uint](nil, true).Size())
}

func TestSBTree_InOrderStop(t *testing.T) {
	tree := MakeSBTree[int, uint]()
	for _, v := range rg.Perm(200) {
		tree.Insert(v)
	}
	seen := 0
	for range tree.InOrder() {
		if seen++; seen == 17 {
			break
		}
	}
	assert.False(t, tree.Corrupt())
	assert.Equal(t, 200, len(slices.Collect(tree.InOrder())))
}

func TestSBTree_Levels(t *testing.T) {
	tree := MakeSBTree[int, uint]()
	tree.Insert(2)
	assert.Equal(t, uint(0), tree.Levels())
	tree.Insert(1)
	tree.Insert(3)
	assert.Equal(t, uint(2), tree.Levels())
	tree.Remove(3)
	assert.Equal(t, uint(4), tree.Levels())
	tree.ResetLevels()
	assert.Equal(t, uint(0), tree.Levels())
}

func BenchmarkSBTree_Insert(b *testing.B) {
	var t *SBTree[int, uint]
	for range b.N {
		t = MakeSBTree[int, uint]()
		for _, v := range rg.Perm(1 << 12) {
			t.Insert(v)
		}
	}
	b.Log(t.Height())
}
