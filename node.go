// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// a node in the tree
type Node[V any] struct {
	left    *Node[V] // left sub-tree
	right   *Node[V] // right sub-tree
	value   V        // stored value, ordered by the tree predicate
	balance int      // -1, 0, +1
}

// allocate a new leaf node
func newNode[V any](value V) *Node[V] {
	return &Node[V]{
		value:   value,
		balance: 0,
	}
}

// Value - read the stored value from a node
func (p *Node[V]) Value() V {
	return p.value
}

// Left - left sub-tree of a node, nil if none
func (p *Node[V]) Left() *Node[V] {
	return p.left
}

// Right - right sub-tree of a node, nil if none
func (p *Node[V]) Right() *Node[V] {
	return p.right
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[V]) Balance() int {
	return p.balance
}

// String - diagnostic representation of a single node
// a balance factor outside {-1,0,+1} means the rebalancing logic has
// corrupted the tree, which is not recoverable
func (p *Node[V]) String() string {
	if p.balance < -1 || p.balance > 1 {
		fault.Panicf("avltree: node %v has corrupted balance: %d", p.value, p.balance)
	}
	l := "none"
	if nil != p.left {
		l = fmt.Sprintf("%v", p.left.value)
	}
	r := "none"
	if nil != p.right {
		r = fmt.Sprintf("%v", p.right.value)
	}
	return fmt.Sprintf("<Node %v> balance: %+d  (left tree top: %s; right tree top: %s)", p.value, p.balance, l, r)
}
