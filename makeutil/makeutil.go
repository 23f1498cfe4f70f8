// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package makeutil provides utilities for make depfiles.
package makeutil

// NextToken returns the next path token in s and the unconsumed rest.
// depfile contents
//
//	<target>: <prereq> ...
//
// <prereq> is space separated
// '\'+newline is space
// ':' is consumed as a boundary, never emitted. There is one target
// per invocation, so extra colons (e.g. trailing phony rules from
// rustc depfiles) just flatten into the token stream.
// A nil token means end of input. A non-nil token is a subslice of s;
// no copy is made.
func NextToken(s []byte) (token, rest []byte) {
	i := 0
skipSep:
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '\n' {
			i += 2
			continue
		}
		if s[i] == '\\' && i+2 < len(s) && s[i+1] == '\r' && s[i+2] == '\n' {
			i += 3
			continue
		}
		switch s[i] {
		case ' ', '\t', '\n', '\r', ':':
			i++
		default:
			break skipSep
		}
	}
	s = s[i:]
	if len(s) == 0 {
		return nil, nil
	}
	for i = 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) &&
			(s[i+1] == '\n' || i+2 < len(s) && s[i+1] == '\r' && s[i+2] == '\n') {
			// '\'+newline is space; '\' before anything else,
			// including a bare CR, is an ordinary token byte.
			return s[:i], s[i:]
		}
		switch s[i] {
		case ' ', '\t', '\n', '\r', ':':
			return s[:i], s[i:]
		}
	}
	return s, nil
}

// ParseDeps parses depfile content and returns all path tokens in
// input order. Callers that stream should use NextToken directly.
func ParseDeps(b []byte) [][]byte {
	var tokens [][]byte
	for len(b) > 0 {
		var tok []byte
		tok, b = NextToken(b)
		if tok == nil {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
