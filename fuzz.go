// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz

package shellcoder

import (
	"bytes"
	"encoding/binary"
)

const fuzzRegionSize = 4096

// Fuzz decodes an op stream from data and applies it to a Dynamic coder and
// a Static coder over a scratch region, cross-checking the prefixes both
// managed to write.
func Fuzz(data []byte) int {
	region := make([]byte, fuzzRegionSize)

	s := NewStatic(region)
	d := NewDynamic()

	for len(data) >= 3 {
		kind := data[0]
		arg := int(binary.LittleEndian.Uint16(data[1:]))
		data = data[3:]

		var op Op

		switch kind % 5 {
		case 0:
			n := arg % (len(data) + 1)
			op = Bytes(data[:n])
			data = data[n:]

		case 1:
			op = Fill(arg, byte(kind))

		case 2:
			op = Advance(arg)

		case 3:
			op = Uint64LE(uint64(arg) * 0x0101010101010101)

		case 4:
			op = Uvarint(uint64(arg))
		}

		errStatic := s.Add(op)
		if err := d.Add(op); err != nil {
			panic(err)
		}

		if errStatic != nil {
			break
		}
	}

	if !bytes.Equal(s.Bytes(), d.Bytes()[:s.Len()]) {
		panic("static and dynamic coders diverged")
	}

	return 1
}
