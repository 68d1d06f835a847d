package services

import (
	"context"
	"sort"
	"strings"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

type presetSource interface {
	List(ctx context.Context) ([]models.Preset, error)
}

// viewService builds the read-only models handed to the rendering layer.
type viewService struct {
	docs    documentAccess
	presets presetSource
}

func NewViewService(docs documentAccess, presets presetSource) *viewService {
	return &viewService{docs: docs, presets: presets}
}

func (s *viewService) Index(ctx context.Context, pageID string) (dto.IndexView, error) {
	if pageID == "" {
		pageID = models.DefaultPageID
	}
	doc, err := s.docs.Read(ctx)
	if err != nil {
		return dto.IndexView{}, err
	}

	current := models.DefaultPage()
	if i := doc.PageIndex(pageID); i >= 0 {
		current = doc.Pages[i]
	}

	return dto.IndexView{
		Systems:     filterByPage(doc.Systems, pageID),
		Pages:       doc.Pages,
		CurrentPage: current,
		Settings:    NormalizeSettings(doc.Settings),
	}, nil
}

func (s *viewService) Admin(ctx context.Context) (dto.AdminView, error) {
	doc, err := s.docs.Read(ctx)
	if err != nil {
		return dto.AdminView{}, err
	}

	presets := append([]models.Preset{}, doc.Presets...)
	if s.presets != nil {
		catalog, err := s.presets.List(ctx)
		if err != nil {
			// the admin page stays usable without the catalog
			logger.FromContext(ctx).Warn("failed to load preset catalog", "error", err)
		}
		presets = append(presets, catalog...)
	}
	sort.SliceStable(presets, func(i, j int) bool {
		return strings.ToLower(presets[i].Name) < strings.ToLower(presets[j].Name)
	})

	return dto.AdminView{
		Systems:  doc.Systems,
		Pages:    doc.Pages,
		Settings: NormalizeSettings(doc.Settings),
		Presets:  presets,
	}, nil
}
