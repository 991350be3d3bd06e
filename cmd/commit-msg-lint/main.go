package main

import (
	"fmt"
	"os"

	app "github.com/breml/conventional-githooks/internal/hooks/commitmsg"
)

func main() {
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
