package imagegen

import "context"

// Request is one text-to-image call. Size is normalized by the client.
type Request struct {
	Prompt string
	Style  string
	Size   string
}

// Generator produces a single hosted image URL for a request.
type Generator interface {
	Generate(ctx context.Context, apiKey string, req Request) (string, error)
}
