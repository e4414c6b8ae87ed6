// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"os"
)

// Verbose reports whether verbose debug output is enabled via
// SIEVETAIL_VERBOSE=1.
func Verbose() bool {
	return os.Getenv("SIEVETAIL_VERBOSE") == "1"
}

// Verbosef prints a debug line to stderr when verbose mode is enabled.
func Verbosef(format string, args ...any) {
	if !Verbose() {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
}
