package main

import (
	"os"

	"github.com/crewplan/crewplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
