package main

import (
	"fmt"
	"os"

	"github.com/de-tools/factory-atlas/pkg/runtime/terminal"
	"github.com/joho/godotenv"
)

func main() {
	// FACTORY_ATLAS_* overrides may live in a local .env file.
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
