// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

import (
	"github.com/zadlg/shellcoder/buffer"
	"github.com/zadlg/shellcoder/internal/pan"
)

// Static builds a payload in a caller-owned region of fixed size.  It never
// allocates: all storage is the region passed to NewStatic, borrowed for the
// coder's lifetime.  The region must not be mutated by anyone else while the
// coder holds it, and the coder must not be used after the region has been
// recycled.
type Static struct {
	buf buffer.Static
}

// NewStatic coder writing into b.  The region's length is the capacity and
// the cursor starts at zero.
func NewStatic(b []byte) *Static {
	return &Static{buffer.MakeStatic(b)}
}

// Add applies ops in order, stopping at the first failure.  An op that
// doesn't fit fails with a *buffer.SizeError before any byte is stored, so
// the region and cursor are left exactly as they were; ops preceding the
// failed one remain applied.
func (s *Static) Add(ops ...Op) (err error) {
	defer func() { err = pan.Error(recover()) }()

	for _, op := range ops {
		op.Put(s.buf.Extend(op.Size()))
	}
	return
}

func (s *Static) Write(p []byte) error             { return s.Add(Bytes(p)) }
func (s *Static) WriteByte(value byte) error       { return s.Add(Uint8(value)) }
func (s *Static) WriteString(str string) error     { return s.Add(String(str)) }
func (s *Static) Fill(count int, value byte) error { return s.Add(Fill(count, value)) }
func (s *Static) Advance(count int) error          { return s.Add(Advance(count)) }

func (s *Static) WriteUint16LE(v uint16) error { return s.Add(Uint16LE(v)) }
func (s *Static) WriteUint16BE(v uint16) error { return s.Add(Uint16BE(v)) }
func (s *Static) WriteUint32LE(v uint32) error { return s.Add(Uint32LE(v)) }
func (s *Static) WriteUint32BE(v uint32) error { return s.Add(Uint32BE(v)) }
func (s *Static) WriteUint64LE(v uint64) error { return s.Add(Uint64LE(v)) }
func (s *Static) WriteUint64BE(v uint64) error { return s.Add(Uint64BE(v)) }

// Len is the cursor position.
func (s *Static) Len() int {
	return s.buf.Len()
}

// Cap is the fixed capacity.
func (s *Static) Cap() int {
	return s.buf.Cap()
}

// Bytes written so far, as a view into the caller's region.  It may be
// called repeatedly and doesn't reset the cursor.
func (s *Static) Bytes() []byte {
	return s.buf.Bytes()
}
