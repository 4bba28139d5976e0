package main

import (
	"os"

	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/colors"
)

func main() {
	os.Exit(run(cmd.Execute))
}

// run executes the command tree and maps its error to an exit code.
func run(execute func() error) int {
	if err := execute(); err != nil {
		colors.Error(err.Error())
		return 1
	}
	return 0
}
