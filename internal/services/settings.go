package services

import (
	"context"
	"strings"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/helpers"
)

type settingsService struct {
	docs documentAccess
}

func NewSettingsService(docs documentAccess) *settingsService {
	return &settingsService{docs: docs}
}

func (s *settingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	doc, err := s.docs.Read(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return NormalizeSettings(doc.Settings), nil
}

// UpdateSettings always writes a complete settings record.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.SettingsRequest) (dto.Result, error) {
	return s.docs.Mutate(ctx, "update_settings", func(_ context.Context, doc *models.Document) (dto.Result, error) {
		prev := NormalizeSettings(doc.Settings)

		doc.Settings = &models.Settings{
			SearchEnabled:     req.SearchEnabled == "on",
			SearchBaseURL:     suppliedOr(req.SearchBaseURL, models.DefaultSearchBaseURL),
			SearchPlaceholder: suppliedOr(req.SearchPlaceholder, models.DefaultSearchPlaceholder),
			SearchWidth:       positiveIntOr(helpers.Value(req.SearchWidth), models.DefaultSearchWidth),
			FooterText:        helpers.ValueOr(req.FooterText, prev.FooterText),
		}
		return dto.Applied(), nil
	})
}

// NormalizeSettings fills in defaults for a stored record. Documents written
// before the search fields existed only carry some of them.
func NormalizeSettings(stored *models.Settings) models.Settings {
	if stored == nil {
		return models.DefaultSettings()
	}
	out := *stored
	if strings.TrimSpace(out.SearchBaseURL) == "" {
		out.SearchBaseURL = models.DefaultSearchBaseURL
	}
	if strings.TrimSpace(out.SearchPlaceholder) == "" {
		out.SearchPlaceholder = models.DefaultSearchPlaceholder
	}
	out.SearchWidth = positiveIntOr(out.SearchWidth, models.DefaultSearchWidth)
	return out
}

func suppliedOr(value *string, fallback string) string {
	if v := strings.TrimSpace(helpers.Value(value)); v != "" {
		return v
	}
	return fallback
}
