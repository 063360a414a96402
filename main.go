package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vsext-labs/vsext/internal/cli"
	"github.com/vsext-labs/vsext/internal/prompt"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
