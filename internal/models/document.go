package models

const (
	DefaultPageID   = "default"
	DefaultPageName = "Home"
	GenericImage    = "generic.png"
)

// Document is the whole persisted start page state. It is always loaded and
// saved as one unit.
type Document struct {
	Pages    []Page    `json:"pages"`
	Systems  []System  `json:"systems"`
	Settings *Settings `json:"settings,omitempty"`
	Presets  []Preset  `json:"presets"`
}

type Page struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultPage is the page that always exists and cannot be deleted.
func DefaultPage() Page {
	return Page{ID: DefaultPageID, Name: DefaultPageName}
}

// NewDocument returns the canonical empty document.
func NewDocument() *Document {
	return &Document{
		Pages:   []Page{DefaultPage()},
		Systems: []System{},
		Presets: []Preset{},
	}
}

// PageIndex returns the position of the page with the given id, or -1.
func (d *Document) PageIndex(id string) int {
	for i, p := range d.Pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Preset is a read-only image preset offered in the admin view.
type Preset struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}
