// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shellcoder constructs exact byte sequences ("shellcode payloads")
// with precise control over layout, endianness and padding.
//
// A payload is built by applying operations to a coder.  Operations are Op
// values: raw bytes, repeated filler, cursor advancement, and fixed-width
// integers in either byte order.  Static writes into a caller-owned region
// of fixed size without allocating; Dynamic owns a growable store and never
// fails for capacity; Limited grows up to a hard ceiling; Stream renders
// operations through an io.Writer.
//
//	var buf [24]byte
//
//	s := shellcoder.NewStatic(buf[:])
//	err := s.Add(
//		shellcoder.Uint64LE(0x10000abcc),
//		shellcoder.Fill(8, 'A'),
//		shellcoder.Uint64LE(0x10000fffc),
//	)
//	if err != nil {
//		return err
//	}
//	payload := s.Bytes()
//
// A failed operation reports an error and leaves the coder exactly as it
// was; operations never partially apply.  A coder must not be mutated by
// multiple goroutines at once, and the written payload may be shared freely
// once building is done.
//
// # Errors
//
// Errors caused by a write that doesn't fit in the target buffer implement
// the following interface:
//
//	interface {
//		BufferSizeLimit() string
//	}
//
// They are *buffer.SizeError values carrying the requested and available
// byte counts, and match buffer.ErrSizeLimit with errors.Is.  Errors caused
// by offset arithmetic that would wrap around are *buffer.OverflowError
// values matching buffer.ErrOffsetOverflow.  No failure is reported by
// panicking.
package shellcoder
