// Package version holds build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// These variables are set via ldflags during build.
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// Platform returns GOOS/GOARCH.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Summary returns "solar_cli <version>" plus the short commit when known.
func Summary() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	summary := "solar_cli " + v
	if Commit != "" && Commit != "none" {
		short := Commit
		if len(short) > 7 {
			short = short[:7]
		}
		summary = fmt.Sprintf("%s (%s)", summary, short)
	}
	return summary
}
