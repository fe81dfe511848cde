package main

import (
	"os"

	"github.com/ariel-frischer/latest-changelog/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
