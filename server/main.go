//go:build !js
// +build !js

// Command server hosts the compiled page and offers the daily quote and the
// drone from the terminal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
