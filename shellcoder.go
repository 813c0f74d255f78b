// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

// Coder is the operation surface common to all payload writers.  The
// buffered implementations (Static, Dynamic, Limited) additionally expose
// the written payload via Bytes and their capacity via Cap.
//
// Every mutating method either applies completely or reports an error
// without changing the coder's state.
type Coder interface {
	// Add applies ops in order, stopping at the first failure.  Ops
	// before the failed one remain applied.
	Add(ops ...Op) error

	// Write copies p verbatim at the cursor.  An empty p always
	// succeeds.
	Write(p []byte) error

	// WriteByte writes a single byte.
	WriteByte(value byte) error

	// WriteString copies the raw bytes of s at the cursor.
	WriteString(s string) error

	// Fill writes count repetitions of value.  A zero count always
	// succeeds.
	Fill(count int, value byte) error

	// Advance moves the cursor ahead by count bytes, filling the gap
	// with zeroes.
	Advance(count int) error

	WriteUint16LE(v uint16) error
	WriteUint16BE(v uint16) error
	WriteUint32LE(v uint32) error
	WriteUint32BE(v uint32) error
	WriteUint64LE(v uint64) error
	WriteUint64BE(v uint64) error

	// Len is the number of payload bytes written so far.
	Len() int
}

var (
	_ Coder = (*Static)(nil)
	_ Coder = (*Dynamic)(nil)
	_ Coder = (*Limited)(nil)
	_ Coder = (*Stream)(nil)
)
