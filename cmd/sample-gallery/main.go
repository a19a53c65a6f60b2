package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// reportedError is a failure whose details a command already wrote to stderr
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}
