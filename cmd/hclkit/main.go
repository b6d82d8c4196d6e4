package main

import (
	"os"

	"github.com/hclkit-lang/hclkit/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
