// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"github.com/zadlg/shellcoder/internal/pan"
)

// Dynamic is a variable-capacity buffer.  The default value is a valid empty
// buffer.
type Dynamic struct {
	buf     []byte
	maxSize int // For limiting allocation; not enforced by this implementation.
}

func makeDynamicHint(b []byte, maxSizeHint int) Dynamic {
	if len(b) != 0 {
		panic("slice must be empty")
	}
	return Dynamic{b, maxSizeHint}
}

// MakeDynamic buffer.  The slice must be empty.
//
// This function can be used in field initializer expressions.  The
// initialized field must not be copied.
func MakeDynamic(b []byte) Dynamic {
	return makeDynamicHint(b, 0)
}

// MakeDynamicHint avoids making excessive allocations if the maximum buffer
// size can be estimated in advance.  The slice must be empty.
func MakeDynamicHint(b []byte, maxSizeHint int) Dynamic {
	return makeDynamicHint(b, maxSizeHint)
}

// NewDynamic buffer.  The slice must be empty.
func NewDynamic(b []byte) *Dynamic {
	return NewDynamicHint(b, 0)
}

// NewDynamicHint avoids making excessive allocations if the maximum buffer
// size can be estimated in advance.  The slice must be empty.
func NewDynamicHint(b []byte, maxSizeHint int) *Dynamic {
	d := makeDynamicHint(b, maxSizeHint)
	return &d
}

// Cap is the currently allocated capacity.
func (d *Dynamic) Cap() int {
	return cap(d.buf)
}

// Len is the current write offset.
func (d *Dynamic) Len() int {
	return len(d.buf)
}

// Bytes written so far.
func (d *Dynamic) Bytes() []byte {
	return d.buf
}

// PutByte doesn't panic unless out of memory.
func (d *Dynamic) PutByte(value byte) {
	d.Extend(1)[0] = value
}

// Extend makes room for addLen more bytes and returns that window.  It
// panics with an *OverflowError if the new offset is not representable; it
// never fails for capacity.
func (d *Dynamic) Extend(addLen int) []byte {
	offset := len(d.buf)

	if size := offset + addLen; size < offset { // Check for overflow.
		pan.Panic(&OverflowError{Offset: offset, Count: addLen})
	} else if size <= cap(d.buf) {
		d.buf = d.buf[:size]
	} else {
		d.grow(addLen)
	}

	return d.buf[offset:]
}

func (d *Dynamic) grow(addLen int) {
	newLen := len(d.buf) + addLen

	newCap := cap(d.buf)*2 + addLen
	if newCap < cap(d.buf) { // Handle overflow.
		newCap = newLen
	}

	if newCap > d.maxSize {
		if d.maxSize >= newLen { // Ignore it if we went over it.
			newCap = d.maxSize
		}
	}

	newBuf := make([]byte, newLen, newCap)
	copy(newBuf, d.buf)
	d.buf = newBuf
}
