package domain

import "golang.org/x/text/cases"

// Suggested style labels offered to clients. The server stores whatever
// label it receives.
var Styles = []string{
	"Photorealistic",
	"Anime",
	"Digital Art",
	"Oil Painting",
	"Watercolor",
	"Pixel Art",
	"3D Render",
	"Minimalist",
}

const (
	Size1024x1024 = "1024x1024"
	Size1024x1792 = "1024x1792"
	Size1792x1024 = "1792x1024"

	DefaultSize = Size1024x1024
)

// Sizes lists the size labels the provider accepts.
var Sizes = []string{Size1024x1024, Size1024x1792, Size1792x1024}

// IsSuggestedStyle reports whether style matches one of Styles, ignoring case.
func IsSuggestedStyle(style string) bool {
	// Casers keep state between calls.
	fold := cases.Fold()
	folded := fold.String(style)
	for _, s := range Styles {
		if fold.String(s) == folded {
			return true
		}
	}
	return false
}
