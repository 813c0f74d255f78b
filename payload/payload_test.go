// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	x := Encode([]byte{0xcc, 0xab, 0x00, 0x41})
	require.Equal(t, "ccab0041", x.Hex)
	require.Equal(t, 4, x.Len)

	b, err := x.Decode()
	require.NoError(t, err)
	require.Equal(t, []byte{0xcc, 0xab, 0x00, 0x41}, b)
}

func TestMarshalRoundTrip(t *testing.T) {
	payload := []byte("\x90\x90\x90/bin/sh\x00")

	data, err := Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"hex":"9090902f62696e2f736800","len":11}`, string(data))

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, payload, back)
}

func TestUnmarshalBadInput(t *testing.T) {
	_, err := Unmarshal([]byte(`{"hex":"zz"}`))
	require.Error(t, err)

	_, err = Unmarshal([]byte(`not json`))
	require.Error(t, err)
}

func TestEmptyPayload(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.Empty(t, back)
}
