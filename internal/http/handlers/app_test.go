package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelforge/internal/domain"
)

func TestServiceErrorMapping(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	cases := []struct {
		name        string
		err         error
		status      int
		code        string
		remediation bool
	}{
		{"missing credential", domain.ErrMissingCredential, http.StatusServiceUnavailable, "missing_credential", true},
		{"empty result", domain.ErrEmptyResult, http.StatusBadGateway, "empty_result", false},
		{"provider failure", domain.NewGenerationError(errors.New("timeout"), false), http.StatusBadGateway, "generation_failed", false},
		{"rejected key", domain.NewGenerationError(errors.New("401 Unauthorized"), true), http.StatusBadGateway, "generation_failed", true},
		{"invalid prompt", domain.ErrInvalidPrompt, http.StatusBadRequest, "bad_request", false},
		{"unknown owner", fmt.Errorf("failed to save image: %w", domain.ErrUnknownOwner), http.StatusBadRequest, "bad_request", false},
		{"save failure", fmt.Errorf("failed to save image: %w", errors.New("conn reset")), http.StatusInternalServerError, "internal", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.serviceError(rec, httptest.NewRequest(http.MethodPost, "/", nil), tc.err)

			require.Equal(t, tc.status, rec.Code)
			var body map[string]errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["error"].Code)
			assert.Equal(t, tc.err.Error(), body["error"].Message)
			assert.Equal(t, tc.remediation, body["error"].Remediation)
		})
	}
}
