// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Fixdep rewrites a compiler-produced depfile into a makefile fragment
// for kbuild-style builds.
//
// It is invoked as
//
//	fixdep <depfile> <target> <cmdline>
//
// and writes the fragment to stdout. See package fixdep for the
// fragment shape and the filtering policy.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"go.chromium.org/infra/build/fixdep/fixdep"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: fixdep <depfile> <target> <cmdline>")
	os.Exit(1)
}

func main() {
	verbose := flag.Bool("v", false, "log ignored dependencies to stderr")
	flag.Usage = usage
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flag.NArg() != 3 {
		usage()
	}

	// Print a stack trace when a panic occurs.
	defer func() {
		if r := recover(); r != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			log.Fatalf("panic: %v\n%s", r, buf)
		}
	}()

	depfile := flag.Arg(0)
	target := flag.Arg(1)
	cmdline := flag.Arg(2)

	buf, err := readFile(depfile)
	if err != nil {
		log.Fatalf("fixdep: %v", err)
	}
	w := bufio.NewWriter(os.Stdout)
	err = fixdep.WriteFragment(w, target, cmdline, buf)
	if err != nil {
		log.Fatalf("fixdep: %v", err)
	}
	err = w.Flush()
	if err != nil {
		log.Fatalf("fixdep: write stdout: %v", err)
	}
}
