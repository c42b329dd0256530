// Package main provides the ramen CLI, a map-less command-line face for
// the Ramen Reality shop log: pin shops, record bowls, browse the
// journal, and let the compass decide what to eat.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
