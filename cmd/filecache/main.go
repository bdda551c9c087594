package main

import (
	"os"

	"github.com/filekv/filecache/internal/cli"
	"github.com/filekv/filecache/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code. Split
// out of main so tests can exercise it.
func run() int {
	cmd := cli.NewRootCmd(version.GetVersion())
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrf("Error: %v\n", err)
		return 1
	}
	return 0
}
