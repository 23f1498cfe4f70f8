// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fixdep

import (
	"bytes"
	"fmt"
	"io"

	"go.chromium.org/infra/build/fixdep/intern"
)

var configPrefix = []byte("CONFIG_")

// ScanConfigSymbols greps buf for CONFIG_ mentions and calls fn with
// each symbol name, i.e. the run of [A-Za-z0-9_] after the prefix.
// It is a textual grep, not a parse: a mention in a comment or string
// counts too. Over-approximating can only add rebuilds, never miss
// one. A bare CONFIG_ with nothing after it is not reported.
func ScanConfigSymbols(buf []byte, fn func(sym []byte)) {
	for {
		i := bytes.Index(buf, configPrefix)
		if i < 0 {
			return
		}
		buf = buf[i+len(configPrefix):]
		n := 0
		for n < len(buf) && isSymChar(buf[n]) {
			n++
		}
		if n > 0 {
			fn(buf[:n])
		}
		buf = buf[n:]
	}
}

func isSymChar(c byte) bool {
	return c == '_' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9'
}

// WriteConfigDeps emits one wildcard dependency line per distinct
// config symbol mentioned in buf:
//
//	    $(wildcard include/config/<SYM>) \
//
// seen carries the dedup state, so callers scanning many prerequisite
// files with one shared set emit each symbol once per invocation.
func WriteConfigDeps(w io.Writer, buf []byte, seen *intern.Set) error {
	var werr error
	ScanConfigSymbols(buf, func(sym []byte) {
		if werr != nil {
			return
		}
		if seen.ContainsOrInsert(sym) {
			return
		}
		if _, err := fmt.Fprintf(w, "    $(wildcard include/config/%s) \\\n", sym); err != nil {
			werr = fmt.Errorf("write config dep: %w", err)
		}
	})
	return werr
}
