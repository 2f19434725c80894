package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"pixelforge/internal/domain"
	"pixelforge/internal/infra"
	"pixelforge/internal/sqlinline"
)

const (
	ProviderOpenAI = "openai"

	// EnvOpenAIAPIKey is consulted before the integration_tokens table.
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// Store resolves the generation credential. Nothing is cached: every lookup
// reads the environment and then the database, so a key added between
// requests is picked up by the next one.
type Store struct {
	sql       infra.SQLExecutor
	lookupEnv func(string) (string, bool)
}

// NewStore returns a store backed by the process environment and, when sql is
// non-nil, the integration_tokens table.
func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql, lookupEnv: os.LookupEnv}
}

// Require returns the OpenAI key or domain.ErrMissingCredential.
func (s *Store) Require(ctx context.Context) (string, error) {
	key, err := s.OpenAIAPIKey(ctx)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", domain.ErrMissingCredential
	}
	return key, nil
}

// OpenAIAPIKey returns the configured key, or "" when none is set.
func (s *Store) OpenAIAPIKey(ctx context.Context) (string, error) {
	if v, ok := s.lookupEnv(EnvOpenAIAPIKey); ok {
		if key := strings.TrimSpace(v); key != "" {
			return key, nil
		}
	}
	return s.Token(ctx, ProviderOpenAI)
}

func (s *Store) Token(ctx context.Context, provider string) (string, error) {
	if s.sql == nil {
		return "", nil
	}
	row := s.sql.QueryRow(ctx, sqlinline.QSelectIntegrationToken, provider)
	var token string
	if err := row.Scan(&token); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s credential: %w", provider, err)
	}
	return strings.TrimSpace(token), nil
}

func (s *Store) SetOpenAIAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("openai api key is required")
	}
	return s.upsert(ctx, ProviderOpenAI, key, map[string]any{"source": "cli"})
}

// ClearOpenAIAPIKey removes the stored key. The environment is untouched.
func (s *Store) ClearOpenAIAPIKey(ctx context.Context) error {
	if s.sql == nil {
		return errors.New("credential store has no database")
	}
	_, err := s.sql.Exec(ctx, sqlinline.QDeleteIntegrationToken, ProviderOpenAI)
	return err
}

func (s *Store) upsert(ctx context.Context, provider, token string, props map[string]any) error {
	if s.sql == nil {
		return errors.New("credential store has no database")
	}
	payload := props
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = s.sql.Exec(ctx, sqlinline.QUpsertIntegrationToken, provider, token, raw)
	return err
}
