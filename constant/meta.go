// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Mu is the canonical application identifier used for filesystem paths and CLI branding.
	Mu = "mu"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for requests against upstream media endpoints.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// AsciiArtLogo is the banner the root help screen prints, loaded at compile time.
//
//go:embed ascii.txt
var AsciiArtLogo string

// Build metadata, overridden through ldflags by the release pipeline.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
