package services

import (
	"context"
	"strings"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/models"
)

// documentAccess is implemented by documentService.
type documentAccess interface {
	Read(ctx context.Context) (*models.Document, error)
	Mutate(ctx context.Context, operation string, fn mutateFunc) (dto.Result, error)
	Skip(ctx context.Context, operation, reason string) dto.Result
}

type pageService struct {
	docs documentAccess
}

func NewPageService(docs documentAccess) *pageService {
	return &pageService{docs: docs}
}

func (s *pageService) ListPages(ctx context.Context) ([]models.Page, error) {
	doc, err := s.docs.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Pages, nil
}

// AddPage appends a page whose id is the slug of name. Pages are unique by
// id, so "Work" and "work!" collide.
func (s *pageService) AddPage(ctx context.Context, name string) (dto.Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.docs.Skip(ctx, "add_page", dto.ReasonEmptyName), nil
	}
	id := Slugify(name)
	if id == "" {
		return s.docs.Skip(ctx, "add_page", dto.ReasonEmptySlug), nil
	}

	return s.docs.Mutate(ctx, "add_page", func(_ context.Context, doc *models.Document) (dto.Result, error) {
		if doc.PageIndex(id) >= 0 {
			return dto.Skipped(dto.ReasonDuplicatePage), nil
		}
		doc.Pages = append(doc.Pages, models.Page{ID: id, Name: name})
		return dto.AppliedTo(id), nil
	})
}

// DeletePage removes the page and every reference to it from systems.
func (s *pageService) DeletePage(ctx context.Context, id string) (dto.Result, error) {
	if id == models.DefaultPageID {
		return s.docs.Skip(ctx, "delete_page", dto.ReasonDefaultPage), nil
	}

	return s.docs.Mutate(ctx, "delete_page", func(_ context.Context, doc *models.Document) (dto.Result, error) {
		changed := false
		if i := doc.PageIndex(id); i >= 0 {
			doc.Pages = append(doc.Pages[:i], doc.Pages[i+1:]...)
			changed = true
		}
		for i := range doc.Systems {
			if pages, removed := without(doc.Systems[i].Pages, id); removed {
				doc.Systems[i].Pages = pages
				changed = true
			}
		}
		if !changed {
			return dto.Skipped(dto.ReasonPageNotFound), nil
		}
		return dto.AppliedTo(id), nil
	})
}

func without(ids []string, id string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out, len(out) != len(ids)
}
