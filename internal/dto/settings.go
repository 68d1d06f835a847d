package dto

// SettingsRequest carries the settings form. A nil pointer means the field
// was not part of the submission.
type SettingsRequest struct {
	SearchEnabled     string
	SearchBaseURL     *string
	SearchPlaceholder *string
	SearchWidth       *string
	FooterText        *string
}
