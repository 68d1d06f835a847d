package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/GregMSThompson/startpage/internal/models"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

// presetCatalog reads the read-only preset list from a JSON or YAML file.
// The file is read on every call so edits show up without a restart.
type presetCatalog struct {
	path string
}

func NewPresetCatalog(path string) *presetCatalog {
	return &presetCatalog{path: path}
}

type presetFile struct {
	Presets []models.Preset `json:"presets" yaml:"presets"`
}

// List returns the catalog entries. A missing or unset file is an empty
// catalog; entries without a name are dropped.
func (c *presetCatalog) List(ctx context.Context) ([]models.Preset, error) {
	if c.path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Debug("preset catalog not found", "path", c.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preset catalog: %w", err)
	}

	presets, err := parsePresets(c.path, raw)
	if err != nil {
		return nil, fmt.Errorf("parse preset catalog %s: %w", c.path, err)
	}

	out := make([]models.Preset, 0, len(presets))
	for _, p := range presets {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// parsePresets accepts either a bare list or an object with a "presets" key.
func parsePresets(path string, raw []byte) ([]models.Preset, error) {
	unmarshal := json.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	}

	var list []models.Preset
	if err := unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var wrapped presetFile
	if err := unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Presets, nil
}
