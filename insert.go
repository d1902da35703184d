// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Insert - insert a new value into the tree
// a value comparing equal to one already stored is silently ignored
// returns true if a node was added
func (tree *Tree[V]) Insert(value V) bool {
	root, added, _ := tree.insert(value, tree.root)
	tree.root = root
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
//
// the third result reports that the height of the sub-tree rooted at
// the returned node has grown by one; each level above either absorbs
// the growth or passes it on
func (tree *Tree[V]) insert(value V, p *Node[V]) (*Node[V], bool, bool) {
	if nil == p { // insert new node
		return newNode(value), true, true
	}
	added := false
	h := false
	switch {
	case tree.lessThan(value, p.value):
		p.left, added, h = tree.insert(value, p.left)
		if h {
			// left branch has grown
			if 1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = -1
			} else { // balance == -1, rebalance
				if 1 == p.left.balance {
					p = doubleRotation(p)
				} else {
					p, _ = singleRotation(p, false)
				}
				h = false
			}
		}

	case tree.lessThan(p.value, value):
		p.right, added, h = tree.insert(value, p.right)
		if h {
			// right branch has grown
			if -1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = 1
			} else { // balance == +1, rebalance
				if -1 == p.right.balance {
					p = doubleRotation(p)
				} else {
					p, _ = singleRotation(p, false)
				}
				h = false
			}
		}

	default:
		// neither orders before the other: already present, ignore
	}
	return p, added, h
}
