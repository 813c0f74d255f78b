// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellcoder

import (
	"bytes"
	"errors"
	"testing"
)

func TestStream(t *testing.T) {
	ops := []Op{
		Uint64LE(0x10000abcc),
		Fill(8, 'A'),
		Uint64LE(0x10000fffc),
	}

	var out bytes.Buffer
	s := NewStream(&out)
	if err := s.Add(ops...); err != nil {
		t.Fatal(err)
	}

	d := NewDynamic()
	if err := d.Add(ops...); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(out.Bytes(), d.Bytes()) {
		t.Errorf("stream %x != dynamic %x", out.Bytes(), d.Bytes())
	}
	if s.Len() != 24 {
		t.Error(s.Len())
	}
}

type failWriter struct {
	errAfter int
	err      error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) > w.errAfter {
		n := w.errAfter
		w.errAfter = 0
		return n, w.err
	}
	w.errAfter -= len(p)
	return len(p), nil
}

func TestStreamWriteError(t *testing.T) {
	cause := errors.New("pipe broke")
	w := &failWriter{errAfter: 10, err: cause}

	s := NewStream(w)
	if err := s.Write(make([]byte, 8)); err != nil {
		t.Fatal(err)
	}

	err := s.Write(make([]byte, 8))
	if err == nil {
		t.Fatal("underlying failure must propagate")
	}
	if !errors.Is(err, cause) {
		t.Error(err)
	}
	if s.Len() != 10 { // 8 + the 2 the writer accepted.
		t.Error(s.Len())
	}
}
