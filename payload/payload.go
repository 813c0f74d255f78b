// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package payload helps with serialization of finished payloads.  The core
// coders expose plain byte slices; this package puts them in a transport
// form (hex-encoded, JSON-taggable) and back.
package payload

import (
	"encoding/hex"
	"encoding/json"
)

// Encoded is the transport form of a payload.
type Encoded struct {
	Hex string `json:"hex"`
	Len int    `json:"len"`
}

// Encode a finished payload.
func Encode(b []byte) *Encoded {
	return &Encoded{
		Hex: hex.EncodeToString(b),
		Len: len(b),
	}
}

// Decode the payload bytes.
func (x *Encoded) Decode() ([]byte, error) {
	return hex.DecodeString(x.Hex)
}

// Marshal a payload directly to its JSON transport form.
func Marshal(b []byte) ([]byte, error) {
	return json.Marshal(Encode(b))
}

// Unmarshal the JSON transport form back to payload bytes.
func Unmarshal(data []byte) ([]byte, error) {
	var x Encoded
	if err := json.Unmarshal(data, &x); err != nil {
		return nil, err
	}
	return x.Decode()
}
