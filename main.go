package main

import (
	"os"

	"github.com/edugenie/edugenie/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
