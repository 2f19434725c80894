// Package generation runs the text-to-image pipeline: credential check,
// one provider call, then one persisted record per success.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"pixelforge/internal/domain"
	"pixelforge/internal/imagegen"
)

// CredentialSource returns the generation key or domain.ErrMissingCredential.
type CredentialSource interface {
	Require(ctx context.Context) (string, error)
}

type GenerateInput struct {
	UserID string
	Prompt string
	Style  string
	Size   string
}

type Service struct {
	creds     CredentialSource
	generator imagegen.Generator
	images    domain.ImageRepository
	users     domain.UserRepository
	logger    zerolog.Logger
}

func NewService(creds CredentialSource, generator imagegen.Generator, images domain.ImageRepository, users domain.UserRepository, logger zerolog.Logger) *Service {
	return &Service{
		creds:     creds,
		generator: generator,
		images:    images,
		users:     users,
		logger:    logger,
	}
}

// Generate returns the hosted URL of a new image and records it for the
// owner. A failed save is reported but the image is not withdrawn.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (string, error) {
	log := s.log(ctx).With().Str("user_id", in.UserID).Logger()

	key, err := s.creds.Require(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("credential check failed")
		return "", err
	}
	log.Debug().Msg("credential checked")

	url, err := s.generator.Generate(ctx, key, imagegen.Request{
		Prompt: in.Prompt,
		Style:  in.Style,
		Size:   in.Size,
	})
	if err != nil {
		log.Debug().Err(err).Msg("generation failed")
		return "", err
	}
	log.Debug().Msg("image generated")

	if !domain.IsSuggestedStyle(in.Style) {
		log.Debug().Str("style", in.Style).Msg("style outside suggested list")
	}

	record := &domain.Image{
		UserID:   in.UserID,
		Prompt:   in.Prompt,
		ImageURL: url,
		Style:    in.Style,
		Size:     in.Size,
	}
	if err := s.images.Create(ctx, record); err != nil {
		log.Warn().Err(err).Str("image_url", url).Msg("generated image not saved")
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	log.Debug().Str("image_id", record.ID).Msg("image persisted")
	return url, nil
}

// UserImages lists the caller's images newest first. Anonymous callers and
// emails without an account get an empty list.
func (s *Service) UserImages(ctx context.Context, identity domain.Identity) ([]domain.Image, error) {
	email := strings.TrimSpace(identity.Email)
	if identity.Anonymous() || email == "" {
		return []domain.Image{}, nil
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.Image{}, nil
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	images, err := s.images.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	if images == nil {
		images = []domain.Image{}
	}
	return images, nil
}

// log prefers the request-scoped logger so entries carry the request id.
func (s *Service) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
