// ============================================================================
// cftime - CF Time Coordinate Conversion
// ============================================================================
//
// Package:     version
// Description: Central version information for the cftime tools
// Author:      msto63 with Claude Sonnet 4.0
// Created:     2025-03-07
// License:     MIT
// ============================================================================

// Package version carries the build identity of the cftime binaries.
// GitCommit and BuildDate are meant to be injected at build time via
// -ldflags "-X github.com/msto63/cftime/pkg/core/version.GitCommit=...".
package version

import "fmt"

var (
	// Version is the semantic version of the cftime tools
	Version = "0.1.0"

	// GitCommit is the commit hash the binary was built from
	GitCommit = "development"

	// BuildDate is the build timestamp in RFC 3339 form
	BuildDate = "unknown"
)

// String returns a single-line version string for logs and user agents
func String() string {
	return fmt.Sprintf("cftime/%s (%s)", Version, GitCommit)
}
