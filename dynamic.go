// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

import (
	"github.com/zadlg/shellcoder/buffer"
	"github.com/zadlg/shellcoder/internal/pan"
)

// Dynamic builds a payload in a self-owned growable store.  Writes never
// fail for capacity; only the defensive cursor-arithmetic guard remains on
// its error surface.  The zero value is a valid empty coder.
type Dynamic struct {
	buf buffer.Dynamic
}

// NewDynamic coder with an empty store.
func NewDynamic() *Dynamic {
	return new(Dynamic)
}

// NewDynamicHint pre-sizes the store, avoiding excessive allocations if the
// payload size can be estimated in advance.
func NewDynamicHint(sizeHint int) *Dynamic {
	return &Dynamic{buffer.MakeDynamicHint(make([]byte, 0, sizeHint), sizeHint)}
}

// Add applies ops in order, stopping at the first failure.  The only
// possible failure is a *buffer.OverflowError from an op whose size would
// wrap the cursor; it is reported before any byte is stored.
func (d *Dynamic) Add(ops ...Op) (err error) {
	defer func() { err = pan.Error(recover()) }()

	for _, op := range ops {
		op.Put(d.buf.Extend(op.Size()))
	}
	return
}

func (d *Dynamic) Write(p []byte) error             { return d.Add(Bytes(p)) }
func (d *Dynamic) WriteByte(value byte) error       { return d.Add(Uint8(value)) }
func (d *Dynamic) WriteString(str string) error     { return d.Add(String(str)) }
func (d *Dynamic) Fill(count int, value byte) error { return d.Add(Fill(count, value)) }
func (d *Dynamic) Advance(count int) error          { return d.Add(Advance(count)) }

func (d *Dynamic) WriteUint16LE(v uint16) error { return d.Add(Uint16LE(v)) }
func (d *Dynamic) WriteUint16BE(v uint16) error { return d.Add(Uint16BE(v)) }
func (d *Dynamic) WriteUint32LE(v uint32) error { return d.Add(Uint32LE(v)) }
func (d *Dynamic) WriteUint32BE(v uint32) error { return d.Add(Uint32BE(v)) }
func (d *Dynamic) WriteUint64LE(v uint64) error { return d.Add(Uint64LE(v)) }
func (d *Dynamic) WriteUint64BE(v uint64) error { return d.Add(Uint64BE(v)) }

// Len is the cursor position.
func (d *Dynamic) Len() int {
	return d.buf.Len()
}

// Cap is the currently allocated capacity.  It is informational: growth is
// automatic and capacity exhaustion is never reported as an error.
func (d *Dynamic) Cap() int {
	return d.buf.Cap()
}

// Bytes written so far.  The slice is a view into the coder's store; clone
// it if the coder will keep writing.
func (d *Dynamic) Bytes() []byte {
	return d.buf.Bytes()
}
