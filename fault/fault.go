// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed       = ProcessError("allocation failed")
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCountMismatch          = RecordError("count mismatch")
	ErrHeightMismatch         = RecordError("height mismatch")
	ErrInvalidConfiguration   = InvalidError("invalid configuration")
	ErrInvalidIterator        = InvalidError("invalid iterator")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidRange           = InvalidError("invalid range")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrLengthTooLarge         = LengthError("length too large")
	ErrNilComparator          = InvalidError("nil comparator")
	ErrOrderViolation         = RecordError("order violation")
	ErrParentLink             = RecordError("parent link")
	ErrPoolCorrupt            = ProcessError("pool corrupt")
	ErrTruncated              = LengthError("truncated")
	ErrUnbalanced             = RecordError("unbalanced")
	ErrValueOutOfRange        = LengthError("value out of range")
	ErrWorkloadMismatch       = ProcessError("workload mismatch")
	ErrWorkloadWeightsAreZero = InvalidError("workload weights are all zero")
	ErrWorkloadWorkersRange   = InvalidError("workload workers out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
