// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"fmt"
)

type sizeError string

func (s sizeError) Error() string           { return string(s) }
func (s sizeError) PublicError() string     { return string(s) }
func (s sizeError) BufferSizeLimit() string { return string(s) }

type overflowError string

func (s overflowError) Error() string       { return string(s) }
func (s overflowError) PublicError() string { return string(s) }

// Sentinels for errors.Is.  Concrete failures unwrap to these.
var (
	ErrSizeLimit      = sizeError("buffer size limit exceeded")
	ErrOffsetOverflow = overflowError("buffer offset overflow")
)

// SizeError details a write that did not fit within a buffer's capacity.
// It implements interface{ BufferSizeLimit() string }.
type SizeError struct {
	Requested int // Bytes the operation needed.
	Available int // Bytes left before the capacity limit.
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %d byte(s) requested, %d available", ErrSizeLimit, e.Requested, e.Available)
}

func (e *SizeError) PublicError() string     { return e.Error() }
func (e *SizeError) BufferSizeLimit() string { return e.Error() }
func (e *SizeError) Unwrap() error           { return ErrSizeLimit }

// OverflowError details cursor arithmetic that would wrap around.
type OverflowError struct {
	Offset int // Write offset before the operation.
	Count  int // Bytes the operation would have added.
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: offset %d + %d byte(s)", ErrOffsetOverflow, e.Offset, e.Count)
}

func (e *OverflowError) PublicError() string { return e.Error() }
func (e *OverflowError) Unwrap() error       { return ErrOffsetOverflow }
