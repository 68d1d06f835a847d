package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/GregMSThompson/startpage/internal/models"
)

// Decode turns a raw persisted payload into a document. It never fails to
// produce a document: an empty or corrupt payload yields the canonical
// empty document together with a non-nil error describing why, so callers
// can log it and carry on. Numbers and booleans found in text fields of a
// hand-edited file are read as their text.
func Decode(raw []byte) (*models.Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.NewDocument(), nil
	}

	// legacy format: the file held only the list of systems
	if trimmed[0] == '[' {
		var systems []models.System
		if err := unmarshalLoose(trimmed, &systems); err != nil {
			return models.NewDocument(), fmt.Errorf("decode legacy system list: %w", err)
		}
		doc := models.NewDocument()
		if systems != nil {
			doc.Systems = systems
		}
		return doc, nil
	}

	var doc models.Document
	if err := unmarshalLoose(trimmed, &doc); err != nil {
		return models.NewDocument(), fmt.Errorf("decode document: %w", err)
	}
	normalize(&doc)
	return &doc, nil
}

// Encode serialises the whole document for storage.
func Encode(doc *models.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "    ")
}

// textFields are the keys whose values the models hold as strings.
var textFields = map[string]bool{
	"id": true, "name": true, "image": true, "image_mode": true, "image_size": true,
	"back_color": true, "front_color": true, "text": true, "url": true,
	"search_base_url": true, "search_placeholder": true, "search_width": true, "footer_text": true,
}

// unmarshalLoose retries a payload that only failed on value types after
// turning scalar values of text fields into strings.
func unmarshalLoose(raw []byte, v any) error {
	err := json.Unmarshal(raw, v)
	var typeErr *json.UnmarshalTypeError
	if err == nil || !errors.As(err, &typeErr) {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if derr := dec.Decode(&tree); derr != nil {
		return err
	}
	fixed, merr := json.Marshal(loosen(tree, false))
	if merr != nil {
		return err
	}
	return json.Unmarshal(fixed, v)
}

func loosen(v any, text bool) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			// system page lists hold ids
			t[k] = loosen(val, textFields[k] || k == "pages")
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = loosen(val, text)
		}
		return t
	case json.Number:
		if text {
			return t.String()
		}
		return t
	case bool:
		if text {
			return strconv.FormatBool(t)
		}
		return t
	default:
		return t
	}
}

func normalize(doc *models.Document) {
	if doc.Pages == nil {
		doc.Pages = []models.Page{}
	}
	if doc.PageIndex(models.DefaultPageID) < 0 {
		doc.Pages = append([]models.Page{models.DefaultPage()}, doc.Pages...)
	}
	if doc.Systems == nil {
		doc.Systems = []models.System{}
	}
	if doc.Presets == nil {
		doc.Presets = []models.Preset{}
	}
}
