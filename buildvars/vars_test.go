// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package buildvars

import "testing"

func TestOrDefault(t *testing.T) {
	origV, origC := Version, Commit
	defer func() { Version, Commit = origV, origC }()

	Version, Commit = "", ""
	if VersionOrDefault("dev") != "dev" || CommitOrDefault("none") != "none" {
		t.Fatalf("expected defaults for empty build vars")
	}

	Version, Commit = "v1.0.0", "abc123"
	if VersionOrDefault("dev") != "v1.0.0" || CommitOrDefault("none") != "abc123" {
		t.Fatalf("expected injected values")
	}
}
