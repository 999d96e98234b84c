// Package main is the entrypoint for the benchplot CLI.
package main

import (
	"github.com/infality/benchplot/cmd"
	"github.com/infality/benchplot/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run benchplot", err)
	}
}
