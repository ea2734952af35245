// Package main implements genctl, a command-line client for the generation
// service. It runs the same dispatcher as the HTTP server, which makes it
// handy for checking prompts and credentials without a frontend.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newDispatcherFromConfig).Execute(); err != nil {
		os.Exit(1)
	}
}
