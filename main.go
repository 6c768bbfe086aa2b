package main

import (
	"os"

	"github.com/som23ya/domestika-creative-assistant-launchpad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
