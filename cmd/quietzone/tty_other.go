//go:build !linux

package main

import "os"

// TODO - use TIOCGETA on the BSDs and darwin.
func isTerminal(f *os.File) bool {
	return false
}
