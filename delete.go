// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"github.com/bitmark-inc/avltree/fault"
)

// delete: tree balancer
//
// the left branch of *pp has shrunk; returns whether the shrink
// propagates above this level
//
// unlike insertion a deletion rotation does not always absorb the
// height change: a double rotation always passes the shrink on and a
// single rotation stops it only in the height-neutral case
func balanceLeft[V any](pp **Node[V]) bool {
	p := *pp
	if -1 == p.balance {
		p.balance = 0
		return true
	} else if 0 == p.balance {
		p.balance = 1
		return false
	}
	// balance == +1, rebalance
	if -1 == p.right.balance {
		*pp = doubleRotation(p)
		return true
	}
	top, h := singleRotation(p, true)
	*pp = top
	return h
}

// delete: tree balancer
// mirror of balanceLeft for a shrunken right branch
func balanceRight[V any](pp **Node[V]) bool {
	p := *pp
	if 1 == p.balance {
		p.balance = 0
		return true
	} else if 0 == p.balance {
		p.balance = -1
		return false
	}
	// balance == -1, rebalance
	if 1 == p.left.balance {
		*pp = doubleRotation(p)
		return true
	}
	top, h := singleRotation(p, true)
	*pp = top
	return h
}

// delete: predecessor splice
//
// q holds the value being removed and has a left sub-tree; walk the
// right spine below *rr to the in-order predecessor, copy its value
// into q and splice the donor node out by its left child
//
// returns whether the sub-tree below *rr has shrunk
func del[V any](q *Node[V], rr **Node[V]) bool {
	r := *rr
	if nil != r.right {
		h := del(q, &r.right)
		if h {
			h = balanceRight(rr)
		}
		return h
	}
	q.value = r.value
	*rr = r.left
	return true
}

// Delete - remove a value from the tree
// returns a not-found error when the tree is empty or the value is
// absent; the tree is unchanged on error
func (tree *Tree[V]) Delete(value V) error {
	if nil == tree.root {
		return fault.ErrDeleteFromEmptyTree
	}
	removed, _ := tree.delete(value, &tree.root)
	if !removed {
		return fault.ErrValueNotFound
	}
	tree.count -= 1
	return nil
}

// internal delete routine
//
// descends to the value, splices it out and propagates the shrink
// back up through the balancers
func (tree *Tree[V]) delete(value V, pp **Node[V]) (bool, bool) {
	p := *pp
	if nil == p { // value not in tree
		return false, false
	}
	removed := false
	h := false
	switch {
	case tree.lessThan(value, p.value):
		removed, h = tree.delete(value, &p.left)
		if h {
			h = balanceLeft(pp)
		}

	case tree.lessThan(p.value, value):
		removed, h = tree.delete(value, &p.right)
		if h {
			h = balanceRight(pp)
		}

	default: // found: delete p
		if nil == p.left {
			*pp = p.right
			h = true
		} else {
			h = del(p, &p.left)
			if h {
				h = balanceLeft(pp)
			}
		}
		removed = true
	}
	return removed, h
}
