// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Search - find the node holding a specific value
// returns the node and true on a match, nil and false otherwise
// the tree is not modified
func (tree *Tree[V]) Search(value V) (*Node[V], bool) {
	return tree.search(value, tree.root)
}

func (tree *Tree[V]) search(value V, p *Node[V]) (*Node[V], bool) {
	if nil == p {
		return nil, false
	}

	switch {
	case tree.lessThan(value, p.value):
		return tree.search(value, p.left)
	case tree.lessThan(p.value, value):
		return tree.search(value, p.right)
	default:
		// not less either way: equal under the total order
		return p, true
	}
}

// First - return the node with the lowest value
func (tree *Tree[V]) First() *Node[V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[V]) first() *Node[V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (tree *Tree[V]) Last() *Node[V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[V]) last() *Node[V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
