package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the arrayfmt CLI.
// These variables can be overridden at build time via -ldflags:
//
//	go build -ldflags "-X arrayfmt/internal/version.Number=1.2.0" ./cmd/arrayfmt

var (
	// Number is the semantic version without decoration.
	Number = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Pretty returns Number with major, minor and patch in their own colors.
// fatih/color drops the colors when output is not a terminal or NO_COLOR is
// set.
func Pretty() string {
	major, minor, patch, rest := split(Number)
	if minor == "" {
		return Number
	}
	out := versionMajorColor.Sprint(major) + "." + versionMinorColor.Sprint(minor)
	if patch != "" {
		out += "." + versionPatchColor.Sprint(patch)
	}
	return out + rest
}

// split cuts "1.2.3-dev" into "1", "2", "3" and "-dev".
func split(v string) (major, minor, patch, rest string) {
	core := v
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, rest = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parts[0], parts[1], parts[2], rest
}
