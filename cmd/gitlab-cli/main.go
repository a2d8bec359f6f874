package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gitlab-cli/internal/app"
)

// main initializes the application runner and executes it with the
// command-line arguments. Every failure, whatever its origin, is logged once
// and terminates the process with exit code 1.
func main() {
	runner := app.NewAppRunner()

	err := runner.Run(os.Args[1:])
	if err != nil {
		log.Printf("[ERROR] %v", err)
		if errors.Is(err, app.ErrUsage) {
			fmt.Fprintln(os.Stderr, "")
			runner.Usage(os.Stderr)
		}
		os.Exit(1)
	}
}
