// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/zadlg/shellcoder/buffer"
)

func TestStaticExample(t *testing.T) {
	region := make([]byte, 24)

	s := NewStatic(region)
	err := s.Add(
		Uint64LE(0x10000abcc),
		Fill(8, 'A'),
		Uint64LE(0x10000fffc),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0xcc, 0xab, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
		'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A',
		0xfc, 0xff, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(s.Bytes(), want) {
		t.Errorf("got  %x\nwant %x", s.Bytes(), want)
	}
	if s.Len() != 24 || s.Cap() != 24 {
		t.Error(s.Len(), s.Cap())
	}

	err = s.WriteByte(0)
	if !errors.Is(err, buffer.ErrSizeLimit) {
		t.Error(err)
	}
	var sizeErr *buffer.SizeError
	if !errors.As(err, &sizeErr) || sizeErr.Requested != 1 || sizeErr.Available != 0 {
		t.Error(err)
	}

	// The buffer is full, but empty writes still succeed.
	if err := s.Write(nil); err != nil {
		t.Error(err)
	}
	if err := s.Fill(0, 'B'); err != nil {
		t.Error(err)
	}
	if s.Len() != 24 {
		t.Error(s.Len())
	}
}

func TestChainEquivalence(t *testing.T) {
	ops := []Op{
		Uint32BE(0xdeadbeef),
		Bytes([]byte{1, 2, 3}),
		Fill(5, 0x90),
		Advance(4),
		CString("sh"),
		Uint16LE(0x1337),
	}

	chained := NewDynamic()
	if err := chained.Add(ops...); err != nil {
		t.Fatal(err)
	}

	stepped := NewDynamic()
	for _, op := range ops {
		if err := stepped.Add(op); err != nil {
			t.Fatal(err)
		}
	}

	if !bytes.Equal(chained.Bytes(), stepped.Bytes()) {
		t.Errorf("chained %x != stepped %x", chained.Bytes(), stepped.Bytes())
	}

	static := NewStatic(make([]byte, chained.Len()))
	if err := static.Add(ops...); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(static.Bytes(), chained.Bytes()) {
		t.Errorf("static %x != dynamic %x", static.Bytes(), chained.Bytes())
	}
}

func TestStaticAtomicity(t *testing.T) {
	s := NewStatic(make([]byte, 8))
	if err := s.WriteString("abcdef"); err != nil {
		t.Fatal(err)
	}

	snapshot := append([]byte(nil), s.Bytes()...)

	if err := s.Write([]byte("toolarge")); err == nil {
		t.Fatal("oversized write must fail")
	}
	if s.Len() != 6 || !bytes.Equal(s.Bytes(), snapshot) {
		t.Error("failed write mutated the coder")
	}

	// The remaining capacity is still usable.
	if err := s.WriteUint16BE(0x4142); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s.Bytes(), []byte("abcdefAB")) {
		t.Errorf("%q", s.Bytes())
	}
}

func TestAddStopsAtFirstFailure(t *testing.T) {
	s := NewStatic(make([]byte, 4))

	err := s.Add(
		Uint16LE(0x0201),
		Fill(10, 'x'),
		Uint16LE(0x0403),
	)
	if !errors.Is(err, buffer.ErrSizeLimit) {
		t.Fatal(err)
	}
	if s.Len() != 2 || !bytes.Equal(s.Bytes(), []byte{1, 2}) {
		t.Error("ops before the failure must remain applied, later ones must not")
	}
}

func TestDynamicNeverCapacityFails(t *testing.T) {
	d := NewDynamic()

	total := 0
	for _, size := range []int{1, 1024, 1 << 20} {
		if err := d.Fill(size, byte(size)); err != nil {
			t.Fatal(size, err)
		}
		total += size
		if d.Len() != total {
			t.Error(d.Len(), total)
		}
	}

	b := d.Bytes()
	if b[0] != 1 || b[1] != 0 || b[total-1] != 0 {
		t.Error(b[0], b[1], b[total-1])
	}
}

func TestDynamicZeroValue(t *testing.T) {
	var d Dynamic

	if err := d.WriteUint32LE(0x04030201); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d.Bytes(), []byte{1, 2, 3, 4}) {
		t.Error(d.Bytes())
	}
}

func TestDynamicHintCoder(t *testing.T) {
	d := NewDynamicHint(64)

	if d.Cap() != 64 {
		t.Error(d.Cap())
	}
	if err := d.Fill(100, 0); err != nil { // Hint is not a limit.
		t.Fatal(err)
	}
	if d.Len() != 100 {
		t.Error(d.Len())
	}
}

func TestLimitedCeiling(t *testing.T) {
	l := NewLimited(4)

	if err := l.WriteUint32LE(0xcafebabe); err != nil {
		t.Fatal(err)
	}

	err := l.WriteByte(0)
	var sizeErr *buffer.SizeError
	if !errors.As(err, &sizeErr) || sizeErr.Requested != 1 || sizeErr.Available != 0 {
		t.Error(err)
	}
	if l.Len() != 4 || l.Cap() != 4 {
		t.Error(l.Len(), l.Cap())
	}
}

func TestOverflowGuard(t *testing.T) {
	s := NewStatic(make([]byte, 16))
	if err := s.Advance(8); err != nil {
		t.Fatal(err)
	}

	err := s.Fill(math.MaxInt, 0)
	if !errors.Is(err, buffer.ErrOffsetOverflow) {
		t.Fatal(err)
	}
	var overflow *buffer.OverflowError
	if !errors.As(err, &overflow) || overflow.Offset != 8 || overflow.Count != math.MaxInt {
		t.Error(err)
	}
	if s.Len() != 8 {
		t.Error(s.Len())
	}

	d := NewDynamic()
	if err := d.WriteByte(0); err != nil {
		t.Fatal(err)
	}
	if err := d.Fill(math.MaxInt, 0); !errors.Is(err, buffer.ErrOffsetOverflow) {
		t.Fatal(err)
	}
	if d.Len() != 1 {
		t.Error(d.Len())
	}
}

func TestWriteAppendsAtCursor(t *testing.T) {
	s := NewStatic(make([]byte, 10))

	if err := s.Write([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := s.Write([]byte("defg")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s.Bytes(), []byte("abcdefg")) || s.Len() != 7 {
		t.Errorf("%q %d", s.Bytes(), s.Len())
	}
}
