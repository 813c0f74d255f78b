// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pan is used to signal buffer failures across internal call chains.
// Panics originating here must not escape the public API: every exported
// entry point recovers them via Error.
package pan

import (
	"import.name/pan"
)

var z = new(pan.Zone)

var Check = z.Check
var Panic = z.Panic
var Wrap = z.Wrap

// Error converts a recovered value into the error that was panicked within
// this zone.  Foreign panics are propagated.
func Error(x any) error {
	return z.Error(x)
}

func Must[T any](x T, err error) T {
	Check(err)
	return x
}
