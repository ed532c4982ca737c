package main

import (
	"os"

	"gopatterns/cmd/gopatterns/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
