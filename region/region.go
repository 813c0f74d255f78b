// Copyright (c) 2024 zadlg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

// Package region provides page-aligned anonymous memory mappings for
// backing bounded payload construction.  A region is mapped writable,
// filled through a Static coder, and optionally flipped to executable;
// writable and executable are never enabled together.
package region

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Region is a private anonymous mapping.
type Region struct {
	mem []byte
}

// Alloc maps size bytes rounded up to whole pages, readable and writable.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		return nil, errors.New("region: size must be positive")
	}

	size = align(size, unix.Getpagesize())

	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, errors.Wrap(err, "region: mmap")
	}
	return &Region{mem}, nil
}

// Bytes is the whole mapped region, suitable for shellcoder.NewStatic.
func (r *Region) Bytes() []byte {
	return r.mem
}

// Size of the mapping in bytes.
func (r *Region) Size() int {
	return len(r.mem)
}

// Protect flips the mapping between writable and executable.
func (r *Region) Protect(exec bool) error {
	prot := unix.PROT_READ | unix.PROT_WRITE
	if exec {
		prot = unix.PROT_READ | unix.PROT_EXEC
	}
	return errors.Wrap(unix.Mprotect(r.mem, prot), "region: mprotect")
}

// Free unmaps the region.  Coders holding it must not be used afterwards.
func (r *Region) Free() error {
	mem := r.mem
	r.mem = nil
	return errors.Wrap(unix.Munmap(mem), "region: munmap")
}

func align(size, alignment int) int {
	return (size + alignment - 1) &^ (alignment - 1)
}
