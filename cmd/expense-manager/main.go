package main

import (
	"os"

	"github.com/shavitns/expense-manager/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
