// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"golang.org/x/exp/constraints"
)

// Tree - type to hold the root node of a tree
type Tree[V any] struct {
	root     *Node[V]
	lessThan func(x V, y V) bool
	count    int
}

// New - create an initially empty tree ordered by lessThan
// the predicate must define a strict total order: it returns true if
// and only if x orders strictly before y
func New[V any](lessThan func(x V, y V) bool) *Tree[V] {
	if nil == lessThan {
		panic("avltree: nil lessThan predicate")
	}
	return &Tree[V]{
		root:     nil,
		lessThan: lessThan,
		count:    0,
	}
}

// NewOrdered - create an empty tree over a naturally ordered type
func NewOrdered[V constraints.Ordered]() *Tree[V] {
	return New(func(x V, y V) bool { return x < y })
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}
