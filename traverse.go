// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Preorder - all values, each node before its sub-trees
// the result is a snapshot independent of later tree mutation
func (tree *Tree[V]) Preorder() []V {
	return preorder(tree.root, make([]V, 0, tree.count))
}

func preorder[V any](p *Node[V], acc []V) []V {
	if nil == p {
		return acc
	}
	acc = append(acc, p.value)
	acc = preorder(p.left, acc)
	return preorder(p.right, acc)
}

// Inorder - all values in ascending order under the tree predicate
// the result is a snapshot independent of later tree mutation
func (tree *Tree[V]) Inorder() []V {
	return inorder(tree.root, make([]V, 0, tree.count))
}

func inorder[V any](p *Node[V], acc []V) []V {
	if nil == p {
		return acc
	}
	acc = inorder(p.left, acc)
	acc = append(acc, p.value)
	return inorder(p.right, acc)
}

// Postorder - all values, each node after its sub-trees
// the result is a snapshot independent of later tree mutation
func (tree *Tree[V]) Postorder() []V {
	return postorder(tree.root, make([]V, 0, tree.count))
}

func postorder[V any](p *Node[V], acc []V) []V {
	if nil == p {
		return acc
	}
	acc = postorder(p.left, acc)
	acc = postorder(p.right, acc)
	return append(acc, p.value)
}
