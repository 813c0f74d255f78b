// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

import (
	"encoding/binary"
)

// Op is a single payload construction step.  An op knows how many bytes it
// will produce, and renders them into a window of exactly that size.
type Op interface {
	// Size returns the number of bytes the operation writes.
	Size() int

	// Put renders the operation into b.  The length of b is Size().
	Put(b []byte)
}

type bytesOp []byte

func (o bytesOp) Size() int    { return len(o) }
func (o bytesOp) Put(b []byte) { copy(b, o) }

// Bytes copies p verbatim.  An empty p is a no-op.
func Bytes(p []byte) Op {
	return bytesOp(p)
}

type stringOp string

func (o stringOp) Size() int    { return len(o) }
func (o stringOp) Put(b []byte) { copy(b, o) }

// String copies the raw bytes of s.
func String(s string) Op {
	return stringOp(s)
}

type cstringOp string

func (o cstringOp) Size() int { return len(o) + 1 }

func (o cstringOp) Put(b []byte) {
	copy(b, o)
	b[len(b)-1] = 0
}

// CString copies the raw bytes of s followed by a NUL terminator.
func CString(s string) Op {
	return cstringOp(s)
}

type fillOp struct {
	count int
	value byte
}

func (o fillOp) Size() int { return o.count }

func (o fillOp) Put(b []byte) {
	for i := range b {
		b[i] = o.value
	}
}

// Fill writes count repetitions of value.  A zero count is a no-op.
func Fill(count int, value byte) Op {
	return fillOp{count, value}
}

// Advance moves the cursor ahead by count bytes, filling the gap with
// zeroes.
func Advance(count int) Op {
	return fillOp{count, 0}
}

type uint8Op uint8

func (o uint8Op) Size() int    { return 1 }
func (o uint8Op) Put(b []byte) { b[0] = byte(o) }

type uint16LE uint16

func (o uint16LE) Size() int    { return 2 }
func (o uint16LE) Put(b []byte) { binary.LittleEndian.PutUint16(b, uint16(o)) }

type uint16BE uint16

func (o uint16BE) Size() int    { return 2 }
func (o uint16BE) Put(b []byte) { binary.BigEndian.PutUint16(b, uint16(o)) }

type uint32LE uint32

func (o uint32LE) Size() int    { return 4 }
func (o uint32LE) Put(b []byte) { binary.LittleEndian.PutUint32(b, uint32(o)) }

type uint32BE uint32

func (o uint32BE) Size() int    { return 4 }
func (o uint32BE) Put(b []byte) { binary.BigEndian.PutUint32(b, uint32(o)) }

type uint64LE uint64

func (o uint64LE) Size() int    { return 8 }
func (o uint64LE) Put(b []byte) { binary.LittleEndian.PutUint64(b, uint64(o)) }

type uint64BE uint64

func (o uint64BE) Size() int    { return 8 }
func (o uint64BE) Put(b []byte) { binary.BigEndian.PutUint64(b, uint64(o)) }

// Uint8 writes a single byte.
func Uint8(v uint8) Op { return uint8Op(v) }

// Int8 writes a single byte.
func Int8(v int8) Op { return uint8Op(v) }

// Uint16LE writes v in little-endian byte order.
func Uint16LE(v uint16) Op { return uint16LE(v) }

// Uint16BE writes v in big-endian byte order.
func Uint16BE(v uint16) Op { return uint16BE(v) }

// Int16LE writes v in little-endian byte order.
func Int16LE(v int16) Op { return uint16LE(v) }

// Int16BE writes v in big-endian byte order.
func Int16BE(v int16) Op { return uint16BE(v) }

// Uint32LE writes v in little-endian byte order.
func Uint32LE(v uint32) Op { return uint32LE(v) }

// Uint32BE writes v in big-endian byte order.
func Uint32BE(v uint32) Op { return uint32BE(v) }

// Int32LE writes v in little-endian byte order.
func Int32LE(v int32) Op { return uint32LE(v) }

// Int32BE writes v in big-endian byte order.
func Int32BE(v int32) Op { return uint32BE(v) }

// Uint64LE writes v in little-endian byte order.
func Uint64LE(v uint64) Op { return uint64LE(v) }

// Uint64BE writes v in big-endian byte order.
func Uint64BE(v uint64) Op { return uint64BE(v) }

// Int64LE writes v in little-endian byte order.
func Int64LE(v int64) Op { return uint64LE(v) }

// Int64BE writes v in big-endian byte order.
func Int64BE(v int64) Op { return uint64BE(v) }

type uint128Op struct {
	hi, lo uint64
	big    bool
}

func (o uint128Op) Size() int { return 16 }

func (o uint128Op) Put(b []byte) {
	if o.big {
		binary.BigEndian.PutUint64(b, o.hi)
		binary.BigEndian.PutUint64(b[8:], o.lo)
	} else {
		binary.LittleEndian.PutUint64(b, o.lo)
		binary.LittleEndian.PutUint64(b[8:], o.hi)
	}
}

// Uint128LE writes the 128-bit value hi<<64|lo in little-endian byte order.
func Uint128LE(hi, lo uint64) Op { return uint128Op{hi, lo, false} }

// Uint128BE writes the 128-bit value hi<<64|lo in big-endian byte order.
func Uint128BE(hi, lo uint64) Op { return uint128Op{hi, lo, true} }

type uvarintOp uint64

func (o uvarintOp) Size() int {
	n := 1
	for x := uint64(o); x >= 0x80; x >>= 7 {
		n++
	}
	return n
}

func (o uvarintOp) Put(b []byte) {
	x := uint64(o)
	i := 0
	for x >= 0x80 {
		b[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	b[i] = byte(x)
}

// Uvarint writes x using unsigned LEB128 encoding (1 to 10 bytes).
func Uvarint(x uint64) Op { return uvarintOp(x) }

type varintOp int64

func (o varintOp) Size() int {
	n := 0
	x := int64(o)
	for {
		n++
		c := byte(x & 0x7f)
		x >>= 7
		if (x == 0 && c&0x40 == 0) || (x == -1 && c&0x40 != 0) {
			return n
		}
	}
}

func (o varintOp) Put(b []byte) {
	x := int64(o)
	i := 0
	for {
		c := byte(x & 0x7f)
		x >>= 7
		if (x == 0 && c&0x40 == 0) || (x == -1 && c&0x40 != 0) {
			b[i] = c
			return
		}
		b[i] = c | 0x80
		i++
	}
}

// Varint writes x using signed LEB128 encoding (1 to 10 bytes).
func Varint(x int64) Op { return varintOp(x) }
