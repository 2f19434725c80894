// Command migrate creates or upgrades the database schema.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"pixelforge/internal/infra"
)

func main() {
	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	logger := infra.NewLogger(os.Getenv("APP_ENV")).With().Str("cmd", "migrate").Logger()
	if err := infra.Migrate(dbURL, logger); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}
}
