// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports which build of boardsync is running.
//
// Release builds inject the values with -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/boardsync/lib/version.Version=v1.2.0 \
//	    -X github.com/bureau-foundation/boardsync/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Binaries installed with "go install module@version" carry no ldflags;
// their module version and VCS revision are read from the embedded
// build information instead.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty,omitempty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the build information of the running binary.
func Current() Build {
	build := Build{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&build, info)
	}
	return build
}

// fillFromBuildInfo fills fields left at their defaults from the
// module and VCS information embedded by the go command.
func fillFromBuildInfo(build *Build, info *debug.BuildInfo) {
	if build.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		build.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if build.Commit == "unknown" {
				build.Commit = setting.Value
				if len(build.Commit) > 12 {
					build.Commit = build.Commit[:12]
				}
			}
		case "vcs.time":
			if build.BuildTime == "unknown" {
				build.BuildTime = setting.Value
			}
		case "vcs.modified":
			build.Dirty = setting.Value == "true"
		}
	}
}

// String formats the build for "boardsync version".
func (b Build) String() string {
	dirty := ""
	if b.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)\n  Go: %s\n  Platform: %s",
		b.Version, b.Commit, dirty, b.BuildTime, b.GoVersion, b.Platform)
}
