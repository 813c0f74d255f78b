// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

import (
	"io"

	"github.com/pkg/errors"

	"github.com/zadlg/shellcoder/buffer"
)

// Stream renders operations through an io.Writer.  Unlike the buffered
// coders it cannot expose the written payload, and atomicity is only as
// good as the underlying writer's: a short write may leave a partial
// operation in the stream.
type Stream struct {
	w io.Writer
	n int
}

// NewStream coder writing through w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Add renders ops in order, stopping at the first failure.  I/O errors are
// returned with context; the byte count reported by Len includes whatever
// the underlying writer accepted.
func (s *Stream) Add(ops ...Op) error {
	for _, op := range ops {
		size := op.Size()
		if size < 0 {
			return &buffer.OverflowError{Offset: s.n, Count: size}
		}
		if size == 0 {
			continue
		}

		b := make([]byte, size)
		op.Put(b)

		n, err := s.w.Write(b)
		s.n += n
		if err != nil {
			return errors.Wrap(err, "shellcoder: stream write")
		}
	}
	return nil
}

func (s *Stream) Write(p []byte) error             { return s.Add(Bytes(p)) }
func (s *Stream) WriteByte(value byte) error       { return s.Add(Uint8(value)) }
func (s *Stream) WriteString(str string) error     { return s.Add(String(str)) }
func (s *Stream) Fill(count int, value byte) error { return s.Add(Fill(count, value)) }
func (s *Stream) Advance(count int) error          { return s.Add(Advance(count)) }

func (s *Stream) WriteUint16LE(v uint16) error { return s.Add(Uint16LE(v)) }
func (s *Stream) WriteUint16BE(v uint16) error { return s.Add(Uint16BE(v)) }
func (s *Stream) WriteUint32LE(v uint32) error { return s.Add(Uint32LE(v)) }
func (s *Stream) WriteUint32BE(v uint32) error { return s.Add(Uint32BE(v)) }
func (s *Stream) WriteUint64LE(v uint64) error { return s.Add(Uint64LE(v)) }
func (s *Stream) WriteUint64BE(v uint64) error { return s.Add(Uint64BE(v)) }

// Len is the number of bytes passed to the underlying writer so far.
func (s *Stream) Len() int {
	return s.n
}
