package store

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/GregMSThompson/startpage/internal/models"
)

func TestDecode_EmptyPayload(t *testing.T) {
	for _, raw := range []string{"", "  \n", "null"} {
		doc, err := Decode([]byte(raw))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if !reflect.DeepEqual(doc, models.NewDocument()) {
			t.Errorf("%q: expected canonical document, got %+v", raw, doc)
		}
	}
}

func TestDecode_LegacySystemList(t *testing.T) {
	doc, err := Decode([]byte(`[{"name":"A","image":"a.png","links":[]},{"name":"B","image":"b.png"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Systems) != 2 || doc.Systems[0].Name != "A" {
		t.Fatalf("expected systems to be kept in order, got %+v", doc.Systems)
	}
	if !reflect.DeepEqual(doc.Pages, []models.Page{models.DefaultPage()}) {
		t.Errorf("expected only the default page, got %+v", doc.Pages)
	}
	if doc.Settings != nil || len(doc.Presets) != 0 {
		t.Errorf("expected no settings or presets, got %+v %+v", doc.Settings, doc.Presets)
	}
	if !doc.Systems[1].OnPage(models.DefaultPageID) {
		t.Error("legacy systems belong to the default page")
	}
}

func TestDecode_Corrupt(t *testing.T) {
	for _, raw := range []string{`{"pages": [`, `[{"name": {"first": "A"}}]`, `"just a string"`} {
		doc, err := Decode([]byte(raw))
		if err == nil {
			t.Errorf("%q: expected error", raw)
		}
		if !reflect.DeepEqual(doc, models.NewDocument()) {
			t.Errorf("%q: expected canonical document, got %+v", raw, doc)
		}
	}
}

func TestDecode_InsertsMissingDefaultPage(t *testing.T) {
	doc, err := Decode([]byte(`{"pages":[{"id":"work","name":"Work"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.Page{models.DefaultPage(), {ID: "work", Name: "Work"}}
	if !reflect.DeepEqual(doc.Pages, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Pages)
	}
	if doc.Systems == nil || doc.Presets == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := models.NewDocument()
	doc.Systems = append(doc.Systems, models.System{
		ID:    "s1",
		Name:  "Grafana",
		Image: "grafana.png",
		Links: []models.Link{{Text: "Prod", URL: "https://grafana"}},
		Pages: []string{"default"},
	})
	settings := models.DefaultSettings()
	doc.Settings = &settings

	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("\n    \"pages\"")) {
		t.Errorf("expected four-space indentation, got %s", data)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("expected %+v, got %+v", doc, got)
	}
}

func TestDecode_ReadsNumbersInTextFields(t *testing.T) {
	raw := `{
		"pages": [{"id": "default", "name": "Home"}, {"id": 2024, "name": 2024}],
		"systems": [
			{"id": "a", "name": "Grafana", "image_size": "80", "pages": ["default"]},
			{"id": "b", "name": 42, "image_size": 80, "back_color": "#fff", "links": [{"text": "v", "url": "http://x"}], "pages": [2024]}
		],
		"settings": {"search_enabled": true, "search_width": 300, "footer_text": "hi"}
	}`

	doc, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Systems) != 2 {
		t.Fatalf("expected both systems, got %+v", doc.Systems)
	}
	b := doc.Systems[1]
	if b.Name != "42" || b.ImageSize != "80" || b.BackColor != "#fff" {
		t.Errorf("unexpected system %+v", b)
	}
	if !reflect.DeepEqual(b.Pages, []string{"2024"}) || len(b.Links) != 1 {
		t.Errorf("unexpected pages or links %+v", b)
	}
	if doc.Pages[1] != (models.Page{ID: "2024", Name: "2024"}) {
		t.Errorf("unexpected page %+v", doc.Pages[1])
	}
	if doc.Settings == nil || doc.Settings.SearchWidth != "300" || !doc.Settings.SearchEnabled {
		t.Errorf("unexpected settings %+v", doc.Settings)
	}
}

func TestDecode_LegacyListWithNumericSize(t *testing.T) {
	doc, err := Decode([]byte(`[{"name": "A", "image_size": 80}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Systems) != 1 || doc.Systems[0].ImageSize != "80" {
		t.Errorf("unexpected systems %+v", doc.Systems)
	}
}
