// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package makeutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDeps(t *testing.T) {
	for _, tc := range []struct {
		name     string
		depsfile []byte
		want     []string
	}{
		{
			name:     "simple",
			depsfile: []byte("foo.o: foo.c foo.h"),
			want: []string{
				"foo.o",
				"foo.c",
				"foo.h",
			},
		},
		{
			name:     "empty",
			depsfile: nil,
			want:     nil,
		},
		{
			name:     "onlyseparators",
			depsfile: []byte(" \t\n: \\\n "),
			want:     nil,
		},
		{
			name:     "newlinewhitespaces",
			depsfile: []byte("foo.o :\tbar\\\n\tbaz\\\r\n  qux"),
			want: []string{
				"foo.o",
				"bar",
				"baz",
				"qux",
			},
		},
		{
			name: "rust-multi",
			depsfile: []byte(`obj/libfoo.rmeta: ../foo/lib.rs ../foo/tables.rs

../foo/lib.rs:
../foo/tables.rs:
`),
			want: []string{
				"obj/libfoo.rmeta",
				"../foo/lib.rs",
				"../foo/tables.rs",
				"../foo/lib.rs",
				"../foo/tables.rs",
			},
		},
		{
			name:     "continuationinsidetoken",
			depsfile: []byte("foo.o: bar\\\nbaz"),
			want: []string{
				"foo.o",
				"bar",
				"baz",
			},
		},
		{
			// '\'+bare-CR is not a line continuation; the backslash
			// stays a token byte and the CR separates.
			name:     "backslashbarecr",
			depsfile: []byte("a \\\r b"),
			want: []string{
				"a",
				`\`,
				"b",
			},
		},
		{
			name:     "backslashbarecrleading",
			depsfile: []byte("\\\rfoo"),
			want: []string{
				`\`,
				"foo",
			},
		},
		{
			name:     "trailingbackslashcr",
			depsfile: []byte("a\\\r"),
			want: []string{
				`a\`,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, tok := range ParseDeps(tc.depsfile) {
				got = append(got, string(tok))
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseDeps(%q) -want +got:\n%s", tc.depsfile, diff)
			}
		})
	}
}

func TestNextTokenView(t *testing.T) {
	buf := []byte("foo.o: foo.c")
	tok, rest := NextToken(buf)
	if got, want := string(tok), "foo.o"; got != want {
		t.Errorf("token=%q; want %q", got, want)
	}
	// Tokens are views into the caller's buffer, not copies.
	if &tok[0] != &buf[0] {
		t.Error("token is not a subslice of the input buffer")
	}
	tok, rest = NextToken(rest)
	if got, want := string(tok), "foo.c"; got != want {
		t.Errorf("token=%q; want %q", got, want)
	}
	tok, rest = NextToken(rest)
	if tok != nil || rest != nil {
		t.Errorf("NextToken at end=(%q, %q); want (nil, nil)", tok, rest)
	}
}
