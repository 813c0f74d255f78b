// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

import (
	"github.com/zadlg/shellcoder/buffer"
	"github.com/zadlg/shellcoder/internal/pan"
)

// Limited builds a payload in a growable store with a hard maximum size.
// It allocates like Dynamic but fails like Static once the ceiling is
// reached.
type Limited struct {
	buf buffer.Limited
}

// NewLimited coder that refuses to grow beyond maxSize bytes.
func NewLimited(maxSize int) *Limited {
	return &Limited{buffer.MakeLimited(nil, maxSize)}
}

// Add applies ops in order, stopping at the first failure.  An op that
// would exceed the maximum size fails with a *buffer.SizeError before any
// byte is stored.
func (l *Limited) Add(ops ...Op) (err error) {
	defer func() { err = pan.Error(recover()) }()

	for _, op := range ops {
		op.Put(l.buf.Extend(op.Size()))
	}
	return
}

func (l *Limited) Write(p []byte) error             { return l.Add(Bytes(p)) }
func (l *Limited) WriteByte(value byte) error       { return l.Add(Uint8(value)) }
func (l *Limited) WriteString(str string) error     { return l.Add(String(str)) }
func (l *Limited) Fill(count int, value byte) error { return l.Add(Fill(count, value)) }
func (l *Limited) Advance(count int) error          { return l.Add(Advance(count)) }

func (l *Limited) WriteUint16LE(v uint16) error { return l.Add(Uint16LE(v)) }
func (l *Limited) WriteUint16BE(v uint16) error { return l.Add(Uint16BE(v)) }
func (l *Limited) WriteUint32LE(v uint32) error { return l.Add(Uint32LE(v)) }
func (l *Limited) WriteUint32BE(v uint32) error { return l.Add(Uint32BE(v)) }
func (l *Limited) WriteUint64LE(v uint64) error { return l.Add(Uint64LE(v)) }
func (l *Limited) WriteUint64BE(v uint64) error { return l.Add(Uint64BE(v)) }

// Len is the cursor position.
func (l *Limited) Len() int {
	return l.buf.Len()
}

// Cap is the maximum size.
func (l *Limited) Cap() int {
	return l.buf.Cap()
}

// Bytes written so far.  The slice is a view into the coder's store; clone
// it if the coder will keep writing.
func (l *Limited) Bytes() []byte {
	return l.buf.Bytes()
}
