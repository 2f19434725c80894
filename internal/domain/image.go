package domain

import "time"

// Image is one completed generation. Records are append-only.
type Image struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Prompt    string    `json:"prompt"`
	ImageURL  string    `json:"image_url"`
	Style     string    `json:"style"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that every required attribute is present. Size is not
// checked against the supported set.
func (i *Image) Validate() error {
	if i == nil {
		return ErrMissingField
	}
	switch {
	case i.UserID == "":
		return fieldError("user_id")
	case i.Prompt == "":
		return fieldError("prompt")
	case i.ImageURL == "":
		return fieldError("image_url")
	case i.Style == "":
		return fieldError("style")
	case i.Size == "":
		return fieldError("size")
	}
	return nil
}

type missingFieldError struct {
	field string
}

func (e missingFieldError) Error() string {
	return ErrMissingField.Error() + ": " + e.field
}

func (e missingFieldError) Unwrap() error {
	return ErrMissingField
}

func fieldError(field string) error {
	return missingFieldError{field: field}
}
