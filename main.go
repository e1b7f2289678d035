package main

import (
	"os"

	"github.com/atomicstack/tmux-ui/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}
