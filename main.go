package main

import (
	"os"

	"bitkit/cmd"
	"bitkit/internal/log"
	"bitkit/pkg/build"
)

// main is the entry point for the bitkit command line tool.
//
// 1. Startup Phase:
//   - Initialize build information
//   - Parse command line arguments and load configuration
//
// 2. Command Phase:
//   - Run the selected command (demo when none is given)
//
// 3. Shutdown Phase:
//   - Flush logs and report any error
func main() {
	// Initialize build information including version, commit hash, and build time
	if err := build.Initialize(); err != nil {
		log.Fatal(err)
	}

	err := cmd.Execute(os.Args[1:])
	_ = log.Sync()
	if err != nil {
		log.Fatal(err)
	}
}
