package main

import (
	"os"

	"github.com/quickbites/admin-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
