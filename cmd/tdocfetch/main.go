package main

import (
	"os"

	"github.com/hskwon/tdocfetch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
