// Package main implements the reminders CLI for parsing phrases locally,
// without running the HTTP server.
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
