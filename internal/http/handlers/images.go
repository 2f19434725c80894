package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"pixelforge/internal/domain"
	"pixelforge/internal/service/generation"
)

// MaxPromptLength is the DALL-E 3 prompt limit in characters.
const MaxPromptLength = 4000

type imageGenerateRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Size   string `json:"size"`
	UserID string `json:"user_id"`
}

type imageGenerateResponse struct {
	ImageURL string `json:"image_url"`
}

type imageListResponse struct {
	Items []domain.Image `json:"items"`
}

func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	identity := a.currentIdentity(r)
	if identity.Subject == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req imageGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", domain.ErrInvalidPrompt.Error())
		return
	}
	if utf8.RuneCountInString(req.Prompt) > MaxPromptLength {
		a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("prompt exceeds %d characters", MaxPromptLength))
		return
	}
	if req.Style == "" {
		req.Style = domain.Styles[0]
	}
	if req.Size == "" {
		req.Size = domain.DefaultSize
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = identity.Subject
	}

	url, err := a.Generation.Generate(r.Context(), generation.GenerateInput{
		UserID: userID,
		Prompt: req.Prompt,
		Style:  req.Style,
		Size:   req.Size,
	})
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, imageGenerateResponse{ImageURL: url})
}

// ImagesList returns the caller's images newest first. Anonymous callers get
// an empty list rather than 401.
func (a *App) ImagesList(w http.ResponseWriter, r *http.Request) {
	images, err := a.Generation.UserImages(r.Context(), a.currentIdentity(r))
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, imageListResponse{Items: images})
}
