package handlers

import (
	"net/http"

	"pixelforge/internal/domain"
)

type optionsResponse struct {
	Styles      []string `json:"styles"`
	Sizes       []string `json:"sizes"`
	DefaultSize string   `json:"default_size"`
}

// Options lists the selector values offered by the web client.
func (a *App) Options(w http.ResponseWriter, _ *http.Request) {
	a.json(w, http.StatusOK, optionsResponse{
		Styles:      domain.Styles,
		Sizes:       domain.Sizes,
		DefaultSize: domain.DefaultSize,
	})
}
