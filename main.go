package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/movie-costar/internal/analyze"
)

var version = "dev"

func main() {
	// COSTAR_* variables may come from a local .env file
	_ = godotenv.Load()

	app := &cli.App{
		Name:     "movie-costar",
		Version:  version,
		Usage:    "Actor co-occurrence analytics over a movie corpus",
		Commands: analyze.Commands(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
