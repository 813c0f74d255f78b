// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports common error types without unnecessary
// dependencies.
package errors

// PublicError is safe to show to untrusted parties.
type PublicError interface {
	error
	PublicError() string
}

// ResourceLimit indicates that a write did not fit within a buffer's
// capacity.
type ResourceLimit interface {
	PublicError
	BufferSizeLimit() string
}
