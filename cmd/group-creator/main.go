package main

import (
	"os"

	"github.com/ytget/group-creator/cmd/group-creator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
