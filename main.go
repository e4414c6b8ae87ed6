// Package main is the entry point for the sievetail CLI application.
// It counts the composites that survive a Sieve of Eratosthenes
// truncated at the largest prime not exceeding the square root of n.
package main

import (
	"sievetail/cli/cmd"
)

// main is the entry point for the sievetail CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
