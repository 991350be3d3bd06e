package main

import (
	"fmt"
	"os"

	app "github.com/breml/conventional-githooks/internal/hooks/prepush"
)

func main() {
	err := app.Run(os.Stdin, os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
