// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"strings"
	"testing"
)

func TestNormalizeVerString(t *testing.T) {
	tests := []struct{ in, want string }{
		{"rc1", "rc1"},
		{"beta.2", "beta.2"},
		{"has space", "hasspace"},
		{"bad_chars!", "badchars"},
		{"", ""},
	}
	for _, test := range tests {
		if got := normalizeVerString(test.in); got != test.want {
			t.Errorf("normalizeVerString(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "1.0.0") {
		t.Fatalf("version %q lacks major.minor.patch prefix", s)
	}
	if PreRelease != "" && !strings.Contains(s, "-"+PreRelease) {
		t.Fatalf("version %q lacks prerelease %q", s, PreRelease)
	}
}
