// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer implements the backing stores of the payload coders.
// Static has a fixed capacity over caller-owned memory, Dynamic grows on
// demand, and Limited grows up to a hard ceiling.
//
// An operation that cannot fit panics through the internal pan zone and
// leaves the buffer unchanged; the shellcoder package converts those panics
// into errors at its API boundary.
package buffer
