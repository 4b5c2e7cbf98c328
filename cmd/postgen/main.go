package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/VillePajala/linkedin-post-generator/internal/cli"
)

func main() {
	// Optional .env next to the binary's working dir; absence is fine.
	godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
