package main

import (
	"fmt"
	"os"

	"github.com/balkashynov/huepick/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "huepick: %s\n", err)
		os.Exit(1)
	}
}