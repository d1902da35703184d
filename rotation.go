// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"github.com/bitmark-inc/avltree/fault"
)

// rotate around a node leaning the same way as its heavy child
//
// direction comes from p.balance: -1 promotes the left child with a
// right rotation, otherwise the right child is promoted with a left
// rotation
//
// returns the new sub-tree root and whether the sub-tree height
// changed; insertion always reports a change (the caller uses it to
// absorb the growth), deletion with a promoted balance of 0 is the
// height-neutral case: both nodes re-tip and the shrink stops here
func singleRotation[V any](p *Node[V], forDelete bool) (*Node[V], bool) {
	var top *Node[V]
	if -1 == p.balance {
		// single LL rotation
		top = p.left
		p.left = top.right
		top.right = p
	} else {
		// single RR rotation
		top = p.right
		p.right = top.left
		top.left = p
	}

	h := true
	if forDelete && 0 == top.balance {
		top.balance = -p.balance
		h = false
	} else {
		p.balance = 0
		top.balance = 0
	}
	return top, h
}

// rotate a zig-zag: the heavy child leans opposite to the node, so
// the grandchild between them is promoted by rotating the child and
// then the node
//
// the balance fixup depends on how the promoted grandchild leant
// relative to p before the rotation:
//
//	same sign      p ← -p.balance   remain ← 0
//	zero           p ← 0            remain ← 0
//	opposite sign  p ← 0            remain ← p.balance
//
// any other combination cannot occur in a well formed tree and
// indicates the balance bookkeeping is already corrupted
func doubleRotation[V any](p *Node[V]) *Node[V] {
	var top, remain *Node[V]
	if -1 == p.balance {
		// double LR rotation
		remain = p.left
		top = remain.right
		remain.right = top.left
		top.left = remain
		p.left = top.right
		top.right = p
	} else {
		// double RL rotation
		remain = p.right
		top = remain.left
		remain.left = top.right
		top.right = remain
		p.right = top.left
		top.left = p
	}

	switch top.balance {
	case p.balance:
		p.balance = -p.balance
		remain.balance = 0
	case 0:
		p.balance = 0
		remain.balance = 0
	case -p.balance:
		remain.balance = p.balance
		p.balance = 0
	default:
		fault.Panicf("avltree: double rotation invariant broken: node balance: %d  promoted balance: %d", p.balance, top.balance)
	}
	top.balance = 0
	return top
}
