package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"pixelforge/internal/domain"
	"pixelforge/internal/infra"
	"pixelforge/internal/middleware"
	"pixelforge/internal/service/generation"
)

type App struct {
	Config     *infra.Config
	Logger     zerolog.Logger
	Generation *generation.Service
	// Countries enriches access logs when a GeoIP database is configured.
	Countries middleware.CountryLookup
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, svc *generation.Service) *App {
	return &App{Config: cfg, Logger: logger, Generation: svc}
}

type errorBody struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Remediation bool   `json:"remediation"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the error envelope. Remediation tells the client to show the
// credential setup instructions.
func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{
		"error": {
			Code:        code,
			Message:     message,
			Remediation: domain.IsCredentialFailure(message),
		},
	})
}

// serviceError maps pipeline failures onto status codes. Messages are passed
// through unchanged so the credential phrase survives.
func (a *App) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		a.error(w, http.StatusServiceUnavailable, "missing_credential", err.Error())
	case errors.Is(err, domain.ErrEmptyResult):
		a.error(w, http.StatusBadGateway, "empty_result", err.Error())
	case errors.Is(err, domain.ErrGenerationFailed):
		a.error(w, http.StatusBadGateway, "generation_failed", err.Error())
	case errors.Is(err, domain.ErrInvalidPrompt),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrUnknownOwner):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		a.requestLogger(r).Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

func (a *App) currentIdentity(r *http.Request) domain.Identity {
	return middleware.IdentityFromContext(r.Context())
}

func (a *App) requestLogger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}
