package models

const (
	ImageModeFit  = "fit"
	ImageModeFill = "fill"
)

// System is a dashboard card. Its position in Document.Systems is its rank.
type System struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	ImageMode  string   `json:"image_mode"`
	ImageSize  string   `json:"image_size"`
	BackColor  string   `json:"back_color"`
	FrontColor string   `json:"front_color"`
	Links      []Link   `json:"links"`
	Pages      []string `json:"pages,omitempty"`
}

type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// AssignedPages returns the pages the system is shown on. A system stored
// without pages belongs to the default page; storage is not rewritten.
func (s System) AssignedPages() []string {
	if len(s.Pages) == 0 {
		return []string{DefaultPageID}
	}
	return s.Pages
}

// OnPage reports whether the system is shown on pageID.
func (s System) OnPage(pageID string) bool {
	for _, id := range s.AssignedPages() {
		if id == pageID {
			return true
		}
	}
	return false
}
