package main

import (
	"os"

	"github.com/pradeepbgs/diesel-docs/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
