// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[V]) Print(printBalance bool) int {
	return printTree(tree.root, "", root, printBalance)
}

// internal print - returns the maximum depth of the tree
func printTree[V any](p *Node[V], prefix string, br branch, printBalance bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(p.right, prefix+t, right, printBalance)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	if printBalance {
		fmt.Printf("%v %+2d\n", p.value, p.balance)
	} else {
		fmt.Printf("%v\n", p.value)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.left, prefix+t, left, printBalance)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
