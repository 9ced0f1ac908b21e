package main

import (
	"os"

	"github.com/recoup-dev/recoup/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
