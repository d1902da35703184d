// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = InvalidError("already initialised")
	ErrDeleteFromEmptyTree  = NotFoundError("cannot delete from an empty tree")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrValueNotFound        = NotFoundError("value not found in tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
