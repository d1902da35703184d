// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avltree - an AVL balanced tree over arbitrary comparable
// values, ordered by a strict-less-than predicate supplied at
// construction
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// This version stores bare values rather than key/value pairs, so a
// tree can be ordered over composite records by supplying a suitable
// predicate.  Inserting a value that compares equal to a stored one
// is silently ignored.  Delete copies a predecessor value upward
// rather than relinking nodes, and reports an error for values that
// are not present.
package avltree
