// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"github.com/zadlg/shellcoder/internal/pan"
)

// Static is a fixed-capacity buffer over a caller-owned byte region, for
// example a stack array or a memory-mapped page.  The default value is a
// zero-capacity buffer.
type Static struct {
	buf []byte
}

// MakeStatic buffer over b.  The region's length is the capacity; the write
// offset starts at zero.
//
// This function can be used in field initializer expressions.  The
// initialized field must not be copied.
func MakeStatic(b []byte) Static {
	return Static{b[0:0:len(b)]}
}

// NewStatic buffer over b.
func NewStatic(b []byte) *Static {
	s := MakeStatic(b)
	return &s
}

// Cap is the fixed capacity.
func (s *Static) Cap() int {
	return cap(s.buf)
}

// Len is the current write offset.
func (s *Static) Len() int {
	return len(s.buf)
}

// Bytes written so far.  The slice aliases the caller's region.
func (s *Static) Bytes() []byte {
	return s.buf
}

// PutByte panics with a *SizeError if the buffer is already full.
func (s *Static) PutByte(value byte) {
	s.Extend(1)[0] = value
}

// Extend makes room for n more bytes and returns that window.  It panics
// with a *SizeError (or an *OverflowError if the new offset is not
// representable) before any mutation, so a failed extension leaves the
// buffer exactly as it was.
func (s *Static) Extend(n int) []byte {
	offset := len(s.buf)
	size := offset + n
	if size < offset { // Check for overflow.
		pan.Panic(&OverflowError{Offset: offset, Count: n})
	}
	if size > cap(s.buf) {
		pan.Panic(&SizeError{Requested: n, Available: cap(s.buf) - offset})
	}
	s.buf = s.buf[:size]
	return s.buf[offset:]
}
