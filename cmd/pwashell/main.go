// Package main is the entry point for pwashell, a desktop shell that runs a
// Progressive Web App in its own native window.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/brianly1003/pwashell/cmd/pwashell/cmd"
)

// Version information (set by ldflags during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	// The native webview event loop must own the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd.SetVersionInfo(Version, BuildTime, GitCommit)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
