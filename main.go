package main

import (
	"os"

	"github.com/nmehta/pharmaquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
