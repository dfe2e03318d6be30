// ccgen is a CLI tool that generates a Country enum from the ISO-3166-1 code table.
package main

import (
	"github.com/hightemp/ccgen/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
