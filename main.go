package main

import (
	"os"

	"github.com/nasywa/karsa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
