package Queues

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_Order(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		for i := 0; i < 100; i++ {
			q.Push(i)
		}
		require.Equal(t, uint(100), q.Size())
		for i := 0; i < 100; i++ {
			v, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, i, v)
		}
		assert.True(t, q.Empty())
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	var q ArrayQueue[int]
	var want []int
	for range 5000 {
		if rg.Intn(3) == 0 && len(want) > 0 {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want[0], v)
			want = want[1:]
		} else {
			x := rg.Int()
			q.Push(x)
			want = append(want, x)
		}
		if rg.Intn(500) == 0 {
			q.Clear()
			want = want[:0]
		}
	}
	require.Equal(t, uint(len(want)), q.Size())
	for _, w := range want {
		v, _ := q.Pop()
		assert.Equal(t, w, v)
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](4)
	_, err := q.Pop()
	var e *EmptyQueueError
	assert.ErrorAs(t, err, &e)
	q.Push("a")
	q.Push("c")
	var qi Queue[string] = q
	qi.Clear()
	assert.True(t, q.Empty())
	assert.Equal(t, uint(0), q.Size())
	q.Push("b")
	v, err := q.Pop()
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
}
