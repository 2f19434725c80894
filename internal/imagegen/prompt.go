package imagegen

import "pixelforge/internal/domain"

// ComposePrompt appends the style to the user's prompt. The text is passed
// through as typed.
func ComposePrompt(prompt, style string) string {
	return prompt + " in " + style + " style"
}

var supportedSizes = map[string]string{
	domain.Size1024x1024: domain.Size1024x1024,
	domain.Size1024x1792: domain.Size1024x1792,
	domain.Size1792x1024: domain.Size1792x1024,
}

// NormalizeSize maps a size label to one the provider accepts. Unknown labels
// fall back to the default square size without an error.
func NormalizeSize(label string) string {
	if size, ok := supportedSizes[label]; ok {
		return size
	}
	return domain.DefaultSize
}
