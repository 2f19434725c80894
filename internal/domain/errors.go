package domain

import (
	"errors"
	"strings"
)

// CredentialPhrase is the fragment every credential-class failure message
// carries. Clients match on it to decide whether to show setup instructions.
const CredentialPhrase = "OpenAI API key"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidPrompt = errors.New("prompt is required")
	ErrMissingField  = errors.New("missing required field")
	ErrUnknownOwner  = errors.New("image owner does not exist")

	// ErrMissingCredential is returned before any provider call when no
	// generation credential is configured.
	ErrMissingCredential = errors.New("Please set up your " + CredentialPhrase + " in the environment variables")

	ErrGenerationFailed = errors.New("failed to generate image")
	// ErrEmptyResult matches ErrGenerationFailed through errors.Is.
	ErrEmptyResult = &GenerationError{Cause: errors.New("no image URL in response"), empty: true}
)

// GenerationError wraps an upstream failure of the image provider.
type GenerationError struct {
	Cause error
	// Credential is set when the provider rejected the credential itself.
	Credential bool
	empty      bool
}

func (e *GenerationError) Error() string {
	msg := "Failed to generate image"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Credential && !strings.Contains(msg, CredentialPhrase) {
		msg += " (check your " + CredentialPhrase + ")"
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is makes every GenerationError match ErrGenerationFailed, and only empty
// results match ErrEmptyResult.
func (e *GenerationError) Is(target error) bool {
	if target == ErrGenerationFailed {
		return true
	}
	if t, ok := target.(*GenerationError); ok && t.empty {
		return e.empty
	}
	return false
}

// NewGenerationError wraps cause as a provider failure.
func NewGenerationError(cause error, credential bool) *GenerationError {
	return &GenerationError{Cause: cause, Credential: credential}
}

// IsCredentialFailure reports whether a failure message points at a missing
// or rejected generation credential.
func IsCredentialFailure(message string) bool {
	return strings.Contains(message, CredentialPhrase)
}
