package main

import (
	"os"

	"github.com/go-gooey/gooey/cmd/gooey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
