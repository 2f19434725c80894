// Command apikey stores or clears the OpenAI key in integration_tokens. The
// running API picks the change up on its next generation request.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"pixelforge/internal/infra"
	"pixelforge/internal/infra/credentials"
)

func main() {
	_ = godotenv.Load()

	var (
		keyFlag   string
		clearFlag bool
	)
	flag.StringVar(&keyFlag, "key", "", "OpenAI API key to store (falls back to OPENAI_API_KEY)")
	flag.BoolVar(&clearFlag, "clear", false, "remove the stored key instead of setting it")
	flag.Parse()

	key := strings.TrimSpace(keyFlag)
	if key == "" && !clearFlag {
		key = strings.TrimSpace(os.Getenv(credentials.EnvOpenAIAPIKey))
	}
	if key == "" && !clearFlag {
		fmt.Fprintln(os.Stderr, "OpenAI API key is required via -key or OPENAI_API_KEY")
		os.Exit(1)
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create pool: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "apikey").Logger()
	store := credentials.NewStore(infra.NewSQLRunner(pool, logger))

	if clearFlag {
		if err := store.ClearOpenAIAPIKey(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "failed to clear api key: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OpenAI API key removed")
		return
	}

	if err := store.SetOpenAIAPIKey(ctx, key); err != nil {
		fmt.Fprintf(os.Stderr, "failed to persist api key: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OpenAI API key stored successfully")
}
