// SPDX-License-Identifier: MIT
//
// Package build provides functionality to manage and retrieve build information
// for the bitkit binary. It allows embedding metadata such as the application
// name, build timestamp, Git commit hash, and semantic version into the binary
// at compile time using linker flags:
//
//	go build -ldflags "-X bitkit/pkg/build.buildName=bitkit -X bitkit/pkg/build.buildVersion=0.1.0 ..."
//
// Development builds carry no ldflags at all and fall back to defaults.
package build

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	DefaultName        = "bitkit"
	DefaultDescription = "Bit manipulation and search toolkit"
	unknown            = "unknown"
)

type ldFlags struct {
	Name        string
	Description string
	Time        string
	Commit      string
	Version     string
}

// Package-level variables for build information. These are populated by -ldflags
// during compilation.
var (
	buildName    string
	buildTime    string
	buildCommit  string
	buildVersion string
	buildFlags   = defaultFlags()
)

func defaultFlags() *ldFlags {
	return &ldFlags{
		Name:        DefaultName,
		Description: DefaultDescription,
		Time:        unknown,
		Commit:      unknown,
		Version:     unknown,
	}
}

// Initialize validates and copies build information from ldflags variables
// into the buildFlags struct. This must be called early in program startup.
// When no ldflags were supplied the development defaults are kept. When
// BuildName is set, every other flag is required and a missing one is an
// error.
func Initialize() error {
	if buildName == "" && buildTime == "" && buildCommit == "" && buildVersion == "" {
		return nil
	}
	if buildName == "" {
		return errors.New("BuildName is required")
	}
	if buildTime == "" {
		return errors.New("BuildTime is required")
	}
	if buildCommit == "" {
		return errors.New("BuildCommit is required")
	}
	if buildVersion == "" {
		return errors.New("BuildVersion is required")
	}

	buildFlags.Name = buildName
	buildFlags.Time = buildTime
	buildFlags.Commit = buildCommit
	buildFlags.Version = buildVersion

	return nil
}

// GetBuildFlags returns the current build information.
func GetBuildFlags() *ldFlags {
	return buildFlags
}

// String formats the build information for `--version` output.
func (f *ldFlags) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", f.Name, f.Version, f.Commit, f.Time)
}
