// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:build !unix

package main

import (
	"fmt"
	"io"
	"os"
)

// readFile reads the whole content of fname.
// The returned error names the operation that failed (open, stat,
// read), and a read shorter than the stat size is an error.
func readFile(fname string) ([]byte, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fname, err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", fname, err)
	}
	buf := make([]byte, fi.Size())
	_, err = io.ReadFull(f, buf)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fname, err)
	}
	return buf, nil
}
