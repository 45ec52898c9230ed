package main

import (
	"os"

	"github.com/dekoninklijkeloop/dkl-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
