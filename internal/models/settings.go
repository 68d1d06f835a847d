package models

const (
	DefaultSearchBaseURL     = "https://www.google.com/search?q="
	DefaultSearchPlaceholder = "Google Search"
	DefaultSearchWidth       = "300"
	DefaultFooterText        = "Made with Love by DevOps Team"
)

// Settings holds the global display settings.
type Settings struct {
	SearchEnabled     bool   `json:"search_enabled"`
	SearchBaseURL     string `json:"search_base_url"`
	SearchPlaceholder string `json:"search_placeholder"`
	SearchWidth       string `json:"search_width"`
	FooterText        string `json:"footer_text"`
}

// DefaultSettings are used when the document carries no settings at all.
func DefaultSettings() Settings {
	return Settings{
		SearchEnabled:     true,
		SearchBaseURL:     DefaultSearchBaseURL,
		SearchPlaceholder: DefaultSearchPlaceholder,
		SearchWidth:       DefaultSearchWidth,
		FooterText:        DefaultFooterText,
	}
}
