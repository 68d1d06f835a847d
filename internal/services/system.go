package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/models"
)

const (
	defaultBackColor  = "#000000"
	defaultFrontColor = "#11161F"
	defaultImageSize  = "80"
	defaultImageMode  = models.ImageModeFill
)

var cssColor = regexp.MustCompile(`^(#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|(rgb|rgba|hsl|hsla)\([0-9.,%\s/a-z-]*\)|[a-zA-Z]+)$`)

type imageResolution interface {
	Resolve(ctx context.Context, current string, in dto.ImageInput) (string, error)
}

type systemService struct {
	docs   documentAccess
	images imageResolution
}

func NewSystemService(docs documentAccess, images imageResolution) *systemService {
	return &systemService{docs: docs, images: images}
}

func (s *systemService) ListSystems(ctx context.Context) ([]models.System, error) {
	doc, err := s.docs.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Systems, nil
}

// ListForPage returns the systems shown on pageID in grid order.
func (s *systemService) ListForPage(ctx context.Context, pageID string) ([]models.System, error) {
	doc, err := s.docs.Read(ctx)
	if err != nil {
		return nil, err
	}
	return filterByPage(doc.Systems, pageID), nil
}

func (s *systemService) AddSystem(ctx context.Context, req dto.SystemRequest) (dto.Result, error) {
	if strings.TrimSpace(req.Name) == "" {
		return s.docs.Skip(ctx, "add_system", dto.ReasonEmptyName), nil
	}

	return s.docs.Mutate(ctx, "add_system", func(ctx context.Context, doc *models.Document) (dto.Result, error) {
		image, err := s.images.Resolve(ctx, models.GenericImage, req.Image)
		if err != nil {
			return dto.Result{}, err
		}
		sys := buildSystem(req)
		sys.ID = uuid.New().String()
		sys.Image = image
		doc.Systems = append(doc.Systems, sys)
		return dto.AppliedTo(sys.ID), nil
	})
}

// UpdateSystem replaces the system wholesale. Only the id and, when no new
// image source is given, the image carry over from the old record.
func (s *systemService) UpdateSystem(ctx context.Context, ref string, req dto.SystemRequest) (dto.Result, error) {
	if strings.TrimSpace(req.Name) == "" {
		return s.docs.Skip(ctx, "update_system", dto.ReasonEmptyName), nil
	}

	return s.docs.Mutate(ctx, "update_system", func(ctx context.Context, doc *models.Document) (dto.Result, error) {
		i, ok := findSystem(doc.Systems, ref)
		if !ok {
			return dto.Skipped(dto.ReasonSystemNotFound), nil
		}
		old := doc.Systems[i]
		current := old.Image
		if current == "" {
			current = models.GenericImage
		}
		image, err := s.images.Resolve(ctx, current, req.Image)
		if err != nil {
			return dto.Result{}, err
		}
		sys := buildSystem(req)
		sys.ID = old.ID
		sys.Image = image
		doc.Systems[i] = sys
		return dto.AppliedTo(sys.ID), nil
	})
}

func (s *systemService) DeleteSystem(ctx context.Context, ref string) (dto.Result, error) {
	return s.docs.Mutate(ctx, "delete_system", func(_ context.Context, doc *models.Document) (dto.Result, error) {
		i, ok := findSystem(doc.Systems, ref)
		if !ok {
			return dto.Skipped(dto.ReasonSystemNotFound), nil
		}
		id := doc.Systems[i].ID
		doc.Systems = append(doc.Systems[:i], doc.Systems[i+1:]...)
		return dto.AppliedTo(id), nil
	})
}

// MoveSystem swaps the system with its neighbour. Order in the document is
// the only ranking there is.
func (s *systemService) MoveSystem(ctx context.Context, ref, direction string) (dto.Result, error) {
	var step int
	switch direction {
	case dto.DirectionUp:
		step = -1
	case dto.DirectionDown:
		step = 1
	default:
		return s.docs.Skip(ctx, "move_system", dto.ReasonInvalidDirection), nil
	}

	return s.docs.Mutate(ctx, "move_system", func(_ context.Context, doc *models.Document) (dto.Result, error) {
		i, ok := findSystem(doc.Systems, ref)
		if !ok {
			return dto.Skipped(dto.ReasonSystemNotFound), nil
		}
		j := i + step
		if j < 0 || j >= len(doc.Systems) {
			return dto.Skipped(dto.ReasonAtBoundary), nil
		}
		doc.Systems[i], doc.Systems[j] = doc.Systems[j], doc.Systems[i]
		return dto.AppliedTo(doc.Systems[j].ID), nil
	})
}

// --- Helpers ---

func filterByPage(systems []models.System, pageID string) []models.System {
	out := make([]models.System, 0, len(systems))
	for _, sys := range systems {
		if sys.OnPage(pageID) {
			out = append(out, sys)
		}
	}
	return out
}

// findSystem resolves a reference to a position: a stable id first, then a
// decimal index for callers that still address systems by position.
func findSystem(systems []models.System, ref string) (int, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, false
	}
	for i, sys := range systems {
		if sys.ID == ref {
			return i, true
		}
	}
	i, err := strconv.Atoi(ref)
	if err != nil || i < 0 || i >= len(systems) {
		return 0, false
	}
	return i, true
}

func buildSystem(req dto.SystemRequest) models.System {
	return models.System{
		Name:       strings.TrimSpace(req.Name),
		ImageMode:  normalizeImageMode(req.ImageMode),
		ImageSize:  positiveIntOr(req.ImageSize, defaultImageSize),
		BackColor:  colorOr(req.BackColor, defaultBackColor),
		FrontColor: colorOr(req.FrontColor, defaultFrontColor),
		Links:      buildLinks(req.LinkTexts, req.LinkURLs),
		Pages:      assignedPages(req.AssignedPages),
	}
}

// buildLinks pairs texts and urls by position and drops incomplete pairs.
func buildLinks(texts, urls []string) []models.Link {
	n := min(len(texts), len(urls))
	links := make([]models.Link, 0, n)
	for i := 0; i < n; i++ {
		text := strings.TrimSpace(texts[i])
		url := strings.TrimSpace(urls[i])
		if text == "" || url == "" {
			continue
		}
		links = append(links, models.Link{Text: text, URL: url})
	}
	return links
}

func assignedPages(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if len(out) == 0 {
		return []string{models.DefaultPageID}
	}
	return out
}

func normalizeImageMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case models.ImageModeFit:
		return models.ImageModeFit
	case models.ImageModeFill:
		return models.ImageModeFill
	}
	return defaultImageMode
}

func colorOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" || !cssColor.MatchString(value) {
		return fallback
	}
	return value
}

func positiveIntOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return strconv.Itoa(n)
}
