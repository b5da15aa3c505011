// Package compare runs one sequence of keys against several ordered
// containers and reports how tall each of them grew.
package compare

import (
	"sort"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/avltrees/Trees"
	"github.com/g-m-twostay/avltrees/Trees/sbtree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/pkg/errors"
)

// Container is an ordered set of ints under measurement.
type Container interface {
	Name() string
	//Insert v, false if it was already present.
	Insert(v int) bool
	//Remove v, false if it wasn't present.
	Remove(v int) bool
	Len() int
	//Height of the underlying tree, -1 when empty or when the container
	//doesn't expose its shape.
	Height() int
	//Levels is the number of nodes compared against by Insert and Remove.
	//0 for containers that don't count them.
	Levels() uint
}

type tree struct {
	name string
	Trees.Tree[int]
}

func (c tree) Name() string {
	return c.name
}

func (c tree) Len() int {
	return int(c.Size())
}

func (c tree) Remove(v int) bool {
	if c.Size() == 0 { //the iterative strategy requires a non-empty tree
		return false
	}
	return c.Tree.Remove(v)
}

type godsAVL struct {
	t *avltree.Tree
}

func (godsAVL) Name() string {
	return NameGodsAVL
}

func (c godsAVL) Insert(v int) bool {
	if _, found := c.t.Get(v); found {
		return false
	}
	c.t.Put(v, struct{}{})
	return true
}

func (c godsAVL) Remove(v int) bool {
	if _, found := c.t.Get(v); !found {
		return false
	}
	c.t.Remove(v)
	return true
}

func (c godsAVL) Len() int {
	return c.t.Size()
}

func (c godsAVL) Height() int {
	var h func(*avltree.Node) int
	h = func(n *avltree.Node) int {
		if n == nil {
			return -1
		}
		return 1 + max(h(n.Children[0]), h(n.Children[1]))
	}
	return h(c.t.Root)
}

func (godsAVL) Levels() uint {
	return 0
}

type godsRBT struct {
	t *redblacktree.Tree
}

func (godsRBT) Name() string {
	return NameGodsRBT
}

func (c godsRBT) Insert(v int) bool {
	if _, found := c.t.Get(v); found {
		return false
	}
	c.t.Put(v, struct{}{})
	return true
}

func (c godsRBT) Remove(v int) bool {
	if _, found := c.t.Get(v); !found {
		return false
	}
	c.t.Remove(v)
	return true
}

func (c godsRBT) Len() int {
	return c.t.Size()
}

func (c godsRBT) Height() int {
	var h func(*redblacktree.Node) int
	h = func(n *redblacktree.Node) int {
		if n == nil {
			return -1
		}
		return 1 + max(h(n.Left), h(n.Right))
	}
	return h(c.t.Root)
}

func (godsRBT) Levels() uint {
	return 0
}

type bTree struct {
	t *btree.BTreeG[int]
}

func (bTree) Name() string {
	return NameBTree
}

func (c bTree) Insert(v int) bool {
	_, replaced := c.t.ReplaceOrInsert(v)
	return !replaced
}

func (c bTree) Remove(v int) bool {
	_, found := c.t.Delete(v)
	return found
}

func (c bTree) Len() int {
	return c.t.Len()
}

// Height isn't exposed by btree.
func (bTree) Height() int {
	return -1
}

func (bTree) Levels() uint {
	return 0
}

type llRB struct {
	t *llrb.LLRB
}

func (llRB) Name() string {
	return NameLLRB
}

func (c llRB) Insert(v int) bool {
	return c.t.ReplaceOrInsert(llrb.Int(v)) == nil
}

func (c llRB) Remove(v int) bool {
	return c.t.Delete(llrb.Int(v)) != nil
}

func (c llRB) Len() int {
	return c.t.Len()
}

// Height is the deepest depth reported by GetHeight over all items.
// Time: O(n*D)
func (c llRB) Height() int {
	h := -1
	c.t.AscendGreaterOrEqual(llrb.Inf(-1), func(i llrb.Item) bool {
		_, d := c.t.GetHeight(i)
		h = max(h, d)
		return true
	})
	return h
}

func (llRB) Levels() uint {
	return 0
}

// Names of the containers understood by New.
const (
	NameBST     = "bst"
	NameBSTIter = "bst-iter"
	NameAVL     = "avl"
	NameAVLIter = "avl-iter"
	NameGodsAVL = "gods-avl"
	NameGodsRBT = "gods-rbt"
	NameBTree   = "btree"
	NameLLRB    = "llrb"
	NameSBTree  = "sbtree"
)

// BTreeDegree of the btree container.
const BTreeDegree = 32

var factories = map[string]func() Container{
	NameBST:     func() Container { return tree{NameBST, Trees.NewBST[int]()} },
	NameBSTIter: func() Container { return tree{NameBSTIter, Trees.NewBST[int]().Iterative()} },
	NameAVL:     func() Container { return tree{NameAVL, Trees.NewAVL[int]()} },
	NameAVLIter: func() Container { return tree{NameAVLIter, Trees.NewAVL[int]().Iterative()} },
	NameGodsAVL: func() Container { return godsAVL{avltree.NewWithIntComparator()} },
	NameGodsRBT: func() Container { return godsRBT{redblacktree.NewWithIntComparator()} },
	NameBTree:   func() Container { return bTree{btree.NewOrderedG[int](BTreeDegree)} },
	NameLLRB:    func() Container { return llRB{llrb.New()} },
	NameSBTree:  func() Container { return tree{NameSBTree, sbtree.MakeSBTree[int, uint]()} },
}

// Names of all containers, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New empty container called name.
func New(name string) (Container, error) {
	if f, ok := factories[name]; ok {
		return f(), nil
	}
	return nil, errors.Errorf("unknown container %q", name)
}
