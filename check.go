// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"
)

// CheckBalance - verify the AVL invariant over the whole tree
//
// sub-tree heights are recomputed from scratch so the stored balance
// factors are checked against independent ground truth
func (tree *Tree[V]) CheckBalance() bool {
	ok, _ := checkBalance(tree.root)
	return ok
}

// internal: balance checker, returns validity and real height
func checkBalance[V any](p *Node[V]) (bool, int) {
	if nil == p {
		return true, 0
	}
	leftOk, leftHeight := checkBalance(p.left)
	rightOk, rightHeight := checkBalance(p.right)

	ok := false
	switch p.balance {
	case 0:
		ok = leftHeight == rightHeight
	case -1:
		ok = leftHeight-1 == rightHeight
	case 1:
		ok = leftHeight == rightHeight-1
	default:
		fmt.Printf("fail at node: %v  balance out of range: %d\n", p.value, p.balance)
		return false, 0
	}
	if !ok {
		fmt.Printf("fail at node: %v  balance: %d  left height: %d  right height: %d\n", p.value, p.balance, leftHeight, rightHeight)
	}

	height := leftHeight
	if rightHeight > height {
		height = rightHeight
	}
	return ok && leftOk && rightOk, height + 1
}
