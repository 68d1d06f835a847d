package dto

import "github.com/GregMSThompson/startpage/internal/models"

// IndexView is the model rendered for a start page.
type IndexView struct {
	Systems     []models.System `json:"systems"`
	Pages       []models.Page   `json:"pages"`
	CurrentPage models.Page     `json:"current_page"`
	Settings    models.Settings `json:"settings"`
}

// AdminView is the model rendered for the admin page.
type AdminView struct {
	Systems  []models.System `json:"systems"`
	Pages    []models.Page   `json:"pages"`
	Settings models.Settings `json:"settings"`
	Presets  []models.Preset `json:"presets"`
}
