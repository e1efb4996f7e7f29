// Package main is the entry point for the rollcall CLI tool.
package main

import (
	"os"

	"github.com/good-yellow-bee/rollcall/cmd/rollcall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
