// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/toeirei/quadsolver/buildvars"
)

const modulePath = "github.com/toeirei/quadsolver"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
			return nil
		},
	}
}

// compositeVersion renders version, commit and build date on one line.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" && c != v {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.CommitOrDefault("dev")
	resolvedDate := buildvars.Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't carry the version (some build paths), look for our
		// module among the dependencies.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep != nil && dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit to aid support.
	if resolvedVersion == "dev" && resolvedCommit != "dev" && resolvedCommit != "" {
		resolvedVersion = resolvedCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
