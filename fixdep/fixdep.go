// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package fixdep rewrites a compiler-produced depfile into a makefile
// fragment.
//
// The fragment records the command line used to produce the target, so
// make notices command-line changes, and drops dependencies that must
// not act as rebuild triggers. The generated autoconf header is touched
// on every configuration change; tracking it directly would rebuild
// the whole tree after any config edit. rlib/rmeta/so paths name build
// outputs, not sources.
//
// The trailing `$(deps_<target>):` rule gives every recorded path an
// empty rule, so a path that vanished between builds means "nothing to
// do" rather than a make error.
package fixdep

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"go.chromium.org/infra/build/fixdep/makeutil"
)

var ignoredSuffixes = [][]byte{
	[]byte("include/generated/autoconf.h"),
	[]byte(".rlib"),
	[]byte(".rmeta"),
	[]byte(".so"),
}

// shouldIgnoreFile reports whether the path token must be suppressed
// from the emitted fragment. Pure trailing-bytes comparison, case
// sensitive, no path normalization.
func shouldIgnoreFile(tok []byte) bool {
	for _, suffix := range ignoredSuffixes {
		if bytes.HasSuffix(tok, suffix) {
			return true
		}
	}
	return false
}

// WriteFragment reads depfile content, filters the path tokens and
// writes the fragment to w:
//
//	savedcmd_<target> := <cmdline>
//
//	deps_<target> := \
//	  <token> \
//	  ...
//
//	<target>: $(deps_<target>)
//
//	$(deps_<target>):
//
// cmdline is emitted verbatim. Surviving tokens keep input order.
// Writes are forward only; the first write error aborts.
func WriteFragment(w io.Writer, target, cmdline string, depfile []byte) error {
	_, err := fmt.Fprintf(w, "savedcmd_%s := %s\n\n", target, cmdline)
	if err != nil {
		return fmt.Errorf("write savedcmd: %w", err)
	}
	_, err = fmt.Fprintf(w, "deps_%s := \\\n", target)
	if err != nil {
		return fmt.Errorf("write deps header: %w", err)
	}
	s := depfile
	for {
		var tok []byte
		tok, s = makeutil.NextToken(s)
		if tok == nil {
			break
		}
		if shouldIgnoreFile(tok) {
			log.Debugf("ignore %q", tok)
			continue
		}
		_, err = fmt.Fprintf(w, "  %s \\\n", tok)
		if err != nil {
			return fmt.Errorf("write dep: %w", err)
		}
	}
	_, err = fmt.Fprintf(w, "\n%s: $(deps_%s)\n\n", target, target)
	if err != nil {
		return fmt.Errorf("write target rule: %w", err)
	}
	_, err = fmt.Fprintf(w, "$(deps_%s):\n", target)
	if err != nil {
		return fmt.Errorf("write deps rule: %w", err)
	}
	return nil
}
