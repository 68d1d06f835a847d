package dto

import "io"

// Move directions
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// SystemRequest carries the submitted fields of the system form. Empty
// strings mean "not supplied" and are defaulted by the service.
type SystemRequest struct {
	Name          string
	BackColor     string
	FrontColor    string
	ImageMode     string
	ImageSize     string
	LinkTexts     []string
	LinkURLs      []string
	AssignedPages []string
	Image         ImageInput
}

// ImageInput holds the optional image sources of a system mutation.
type ImageInput struct {
	Upload *ImageUpload
	Pasted string
	Preset string
}

// ImageUpload is a file received from the form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
