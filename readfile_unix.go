// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:build unix

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// readFile reads the whole content of fname.
// The returned error names the operation that failed (open, fstat,
// read), and a read shorter than the stat size is an error.
func readFile(fname string) ([]byte, error) {
	fd, err := unix.Open(fname, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fname, err)
	}
	defer unix.Close(fd)
	var st unix.Stat_t
	err = unix.Fstat(fd, &st)
	if err != nil {
		return nil, fmt.Errorf("fstat %s: %w", fname, err)
	}
	buf := make([]byte, st.Size)
	n := 0
	for n < len(buf) {
		m, err := unix.Read(fd, buf[n:])
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", fname, err)
		}
		if m == 0 {
			return nil, fmt.Errorf("read %s: short read %d of %d bytes", fname, n, len(buf))
		}
		n += m
	}
	return buf, nil
}
