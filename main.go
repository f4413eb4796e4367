package main

import (
	"os"

	"github.com/penwyp/go-expiry-bar/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
