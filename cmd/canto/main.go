// SPDX-License-Identifier: MIT

// Command canto tokenizes & parses text using lexers defined in grammar files.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
