// Command ecliptic-banner draws the ecliptic star chart banner as SVG.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newCLIApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
