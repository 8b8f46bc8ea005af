// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/segtree/fault"
)

// test that the error classes can be distinguished
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{fault.ErrOutOfRange, true, false, false, false},
		{fault.ErrLevelOutOfRange, true, false, false, false},
		{fault.ErrEndpointSizeInvalid, true, false, false, false},
		{fault.ErrMalformedKey, false, true, false, false},
		{fault.ErrMalformedValue, false, true, false, false},
		{fault.ErrAlreadyInitialised, false, false, false, true},
		{fault.ErrNotInitialised, false, false, false, true},
		{fault.ErrTransactionInUse, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}
