package Trees

import (
	"cmp"
	"iter"
	"strconv"
)

// Tree represents an ordered set of keys implemented using linked nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Insert and Remove of the concrete trees are implemented recursively;
// the views returned by Iterative() implement them with an explicit
// ancestor stack instead. Every other receiver is iterative.
// A Tree is not safe for concurrent use.
type Tree[T cmp.Ordered] interface {
	//Insert v to the Tree. Returns false if v is already in the Tree, in
	//which case the Tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returns false if v isn't in the Tree, in which
	//case the Tree is unchanged.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Successor returns the smallest element greater than v. The bool is
	//false if v isn't in the tree or v is the Maximum.
	Successor(v T) (T, bool)
	//Predecessor returns the greatest element less than v. The bool is
	//false if v isn't in the tree or v is the Minimum.
	Predecessor(v T) (T, bool)
	//InOrder returns the keys in ascending order. The sequence is lazy and
	//can be ranged over again; each pass starts from the current root.
	//The tree mustn't be modified during a pass.
	InOrder() iter.Seq[T]
	//Size of the tree.
	Size() uint
	//Height of the tree. An empty tree has height -1, a single node 0.
	Height() int
	//Levels is the number of nodes compared against by Insert and Remove
	//since the tree was created or ResetLevels was last called.
	Levels() uint
	//Corrupt returns whether the in-order sequence isn't strictly increasing.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

// EmptyTreeError is the panic value of operations whose precondition is a
// non-empty tree.
type EmptyTreeError struct {
	Op string
}

func (e EmptyTreeError) Error() string {
	return "Trees: " + e.Op + " on an empty tree"
}

// NotEmptyError is the panic value of Sort when handed a tree that already
// holds keys.
type NotEmptyError struct {
	Size uint
}

func (e NotEmptyError) Error() string {
	return "Trees: expected an empty tree, got one of size " + strconv.FormatUint(uint64(e.Size), 10)
}
