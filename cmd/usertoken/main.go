// Command usertoken creates (or finds) a user by email and prints a bearer
// token for it, standing in for the external sign-in flow during development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"pixelforge/internal/adapter/repo"
	"pixelforge/internal/infra"
	"pixelforge/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	var (
		emailFlag string
		nameFlag  string
		ttlFlag   time.Duration
	)
	flag.StringVar(&emailFlag, "email", "", "user email (created when missing)")
	flag.StringVar(&nameFlag, "name", "", "display name to set")
	flag.DurationVar(&ttlFlag, "ttl", 24*time.Hour, "token lifetime (0 for no expiry)")
	flag.Parse()

	email := strings.TrimSpace(emailFlag)
	if email == "" {
		exitWithError(errors.New("-email is required"))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		exitWithError(errors.New("JWT_SECRET is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "usertoken").Logger()
	users := repo.NewUserRepository(infra.NewSQLRunner(pool, logger))

	user, err := users.UpsertByEmail(ctx, email, nameFlag)
	if err != nil {
		exitWithError(fmt.Errorf("failed to upsert user: %w", err))
	}

	token, err := middleware.SignJWT(secret, user.ID, user.Email, ttlFlag)
	if err != nil {
		exitWithError(fmt.Errorf("failed to sign token: %w", err))
	}

	fmt.Fprintf(os.Stderr, "User %s (%s)\n", user.ID, user.Email)
	fmt.Println(token)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
