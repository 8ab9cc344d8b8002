package main

import (
	"fmt"
	"io"

	"solar_cli/pkg/version"
)

// printVersion prints the version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "solar_cli version %s\n", version.Version)
	fmt.Fprintf(w, "  commit: %s\n", version.Commit)
	fmt.Fprintf(w, "  built: %s\n", version.Date)
	fmt.Fprintf(w, "  go: %s\n", version.GoVersion)
	fmt.Fprintf(w, "  platform: %s\n", version.Platform())
}
