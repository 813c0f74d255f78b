// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"github.com/zadlg/shellcoder/internal/pan"
)

// Limited is a dynamic buffer with a maximum size.  The default value is an
// empty buffer that cannot grow.
type Limited struct {
	d Dynamic
}

// MakeLimited buffer with a maximum size.  The slice must be empty.
//
// This function can be used in field initializer expressions.  The
// initialized field must not be copied.
func MakeLimited(b []byte, maxSize int) Limited {
	return Limited{MakeDynamicHint(b, maxSize)}
}

// NewLimited buffer with a maximum size.  The slice must be empty.
func NewLimited(b []byte, maxSize int) *Limited {
	l := MakeLimited(b, maxSize)
	return &l
}

// Cap is the maximum size.
func (l *Limited) Cap() int {
	return l.d.maxSize
}

// Len is the current write offset.
func (l *Limited) Len() int {
	return l.d.Len()
}

// Bytes written so far.
func (l *Limited) Bytes() []byte {
	return l.d.Bytes()
}

// PutByte panics with a *SizeError if the buffer is already full.
func (l *Limited) PutByte(value byte) {
	l.Extend(1)[0] = value
}

// Extend makes room for n more bytes and returns that window.  It panics
// with a *SizeError before any mutation if the result would exceed the
// maximum size.
func (l *Limited) Extend(n int) []byte {
	if offset := l.d.Len(); n > l.d.maxSize-offset {
		pan.Panic(&SizeError{Requested: n, Available: l.d.maxSize - offset})
	}
	return l.d.Extend(n)
}
