package main

import (
	"os"

	"github.com/AttemptedCollective/Airbox/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
