// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"strings"
	"testing"
)

// TestString ensures the version string begins with the well-formed semantic
// version derived from the version constants.
func TestString(t *testing.T) {
	ver := String()
	want := "1.0.0"
	if PreRelease != "" {
		want += "-" + PreRelease
	}
	if !strings.HasPrefix(ver, want) {
		t.Fatalf("unexpected version string -- got %q, want prefix %q", ver,
			want)
	}
}
