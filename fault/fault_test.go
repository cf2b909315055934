// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

// check that each class predicate accepts only its own class
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{fault.ErrAlreadyInitialised, true, false, false, false, false, false},
		{fault.ErrInvalidIterator, false, true, false, false, false, false},
		{fault.ErrInvalidRange, false, true, false, false, false, false},
		{fault.ErrTruncated, false, false, true, false, false, false},
		{fault.ErrLengthTooLarge, false, false, true, false, false, false},
		{fault.ErrValueOutOfRange, false, false, true, false, false, false},
		{fault.ErrKeyNotFound, false, false, false, true, false, false},
		{fault.ErrAllocationFailed, false, false, false, false, true, false},
		{fault.ErrWorkloadMismatch, false, false, false, false, true, false},
		{fault.ErrUnbalanced, false, false, false, false, false, true},
		{fault.ErrParentLink, false, false, false, false, false, true},
		{fmt.Errorf("%w at key: 7", fault.ErrHeightMismatch), false, false, false, false, false, true},
		{fmt.Errorf("decode: %w", fault.ErrTruncated), false, false, true, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists: %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid: %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: length: %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found: %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process: %v", i, err)
		assert.Equal(t, e.record, fault.IsErrRecord(err), "%d: record: %v", i, err)
	}
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) })
	assert.PanicsWithValue(t, "check failed with error: unbalanced", func() {
		fault.PanicIfError("check", fault.ErrUnbalanced)
	})
}
