package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gzhole/asidata/internal/cli"
	"github.com/gzhole/asidata/internal/output"
	"github.com/gzhole/asidata/internal/validate"
)

// Exit codes distinguish the two fatal failure classes so build
// pipelines can react to them separately.
const (
	exitGeneric    = 1
	exitValidation = 2
	exitWrite      = 3
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		return exitValidation
	}
	var werr *output.IOWriteError
	if errors.As(err, &werr) {
		return exitWrite
	}
	return exitGeneric
}
