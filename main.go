// Package main is the entry point for the crosswire CLI.
package main

import "crosswire.dev/pkg/crosswire/cmd"

func main() {
	cmd.Execute()
}
