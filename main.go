package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/madara-tools/madara-generator/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Printed {
			fmt.Fprintln(os.Stderr, "Error:", exitErr)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(cli.ExitFatal)
}
