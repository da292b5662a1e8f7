// Package main is the entry point for warehousegen.
package main

import (
	"fmt"
	"os"

	"github.com/fmcglabs/warehousegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
