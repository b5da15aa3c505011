package Trees

import (
	"testing"
)

const (
	bAddN = 1 << 12
)

func BenchmarkAVL_Insert(b *testing.B) {
	var t *AVL[int]
	for range b.N {
		t = NewAVL[int]()
		for _, v := range rg.Perm(bAddN) {
			t.Insert(v)
		}
	}
	b.Log(t.depth())
}

func BenchmarkAVL_IterInsert(b *testing.B) {
	var t *AVL[int]
	for range b.N {
		t = NewAVL[int]()
		var st Stack[int]
		for _, v := range rg.Perm(bAddN) {
			_, st = t.BufferedIterInsert(v, st)
		}
	}
	b.Log(t.depth())
}

func BenchmarkBST_Insert(b *testing.B) {
	var t *BST[int]
	for range b.N {
		t = NewBST[int]()
		for _, v := range rg.Perm(bAddN) {
			t.IterInsert(v)
		}
	}
	b.Log(t.depth())
}

func BenchmarkAVL_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := NewAVL[int]()
		for _, v := range rg.Perm(bAddN) {
			t.Insert(v)
		}
		b.StartTimer()
		for v := range bAddN {
			t.Remove(v)
		}
	}
}

func BenchmarkAVL_IterRemove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := NewAVL[int]()
		for _, v := range rg.Perm(bAddN) {
			t.Insert(v)
		}
		b.StartTimer()
		var st Stack[int]
		for v := range bAddN {
			_, st = t.BufferedIterRemove(v, st)
		}
	}
}

var sideEff bool

func BenchmarkAVL_Has(b *testing.B) {
	t := NewAVL[int]()
	for _, v := range rg.Perm(bAddN) {
		t.Insert(v)
	}
	b.ResetTimer()
	for range b.N {
		for v := range bAddN {
			sideEff = t.Has(v)
		}
	}
}
