// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errordata helps with error serialization.
package errordata

import (
	"errors"

	"github.com/zadlg/shellcoder/buffer"
	scerrors "github.com/zadlg/shellcoder/errors"
)

// Internal details of an error.
type Internal struct {
	Error  string  `json:"error,omitempty"` // Omitted if same as public error.
	Public *Public `json:"public,omitempty"`
}

// Deconstruct an error on best-effort basis.
func Deconstruct(err error) *Internal {
	if pub := deconstructSizeLimit(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructOverflow(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructPublic(err); pub != nil { // Must be last.
		return newInternalWithPublic(err, pub)
	}

	return &Internal{
		Error: err.Error(),
	}
}

func newInternalWithPublic(err error, pub *Public) *Internal {
	x := &Internal{
		Public: pub,
	}
	if s := err.Error(); s != pub.Error {
		x.Error = s
	}
	return x
}

// GetPublic representation which is well-formed even if there are no public
// details.
func (x *Internal) GetPublic() *Public {
	if x.Public != nil {
		return x.Public
	}

	return &Public{
		Error: "internal error",
	}
}

// Reconstruct an error.
func (x *Internal) Reconstruct() error {
	if x.Public == nil {
		return errors.New(x.Error)
	}

	return x.Public.Reconstruct()
}

// Public details of an error.
type Public struct {
	Error     string     `json:"error"`
	SizeLimit *SizeLimit `json:"size_limit,omitempty"`
	Overflow  *Overflow  `json:"overflow,omitempty"`
}

// Reconstruct an error without internal details.
func (x *Public) Reconstruct() error {
	if x.SizeLimit != nil {
		return &buffer.SizeError{
			Requested: x.SizeLimit.Requested,
			Available: x.SizeLimit.Available,
		}
	}
	if x.Overflow != nil {
		return &buffer.OverflowError{
			Offset: x.Overflow.Offset,
			Count:  x.Overflow.Count,
		}
	}
	return publicError(x.Error)
}

// SizeLimit error details.
type SizeLimit struct {
	Requested int `json:"requested"`
	Available int `json:"available"`
}

func deconstructSizeLimit(err error) *Public {
	var e *buffer.SizeError
	if !errors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
		SizeLimit: &SizeLimit{
			Requested: e.Requested,
			Available: e.Available,
		},
	}
}

// Overflow error details.
type Overflow struct {
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

func deconstructOverflow(err error) *Public {
	var e *buffer.OverflowError
	if !errors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
		Overflow: &Overflow{
			Offset: e.Offset,
			Count:  e.Count,
		},
	}
}

func deconstructPublic(err error) *Public {
	var e scerrors.PublicError
	if !errors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
	}
}

type publicError string

func (e publicError) Error() string       { return string(e) }
func (e publicError) PublicError() string { return string(e) }
