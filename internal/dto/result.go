package dto

// Skip reasons reported when a mutation is ignored.
const (
	ReasonEmptyName        = "empty_name"
	ReasonEmptySlug        = "empty_slug"
	ReasonDuplicatePage    = "duplicate_page"
	ReasonDefaultPage      = "default_page"
	ReasonPageNotFound     = "page_not_found"
	ReasonSystemNotFound   = "system_not_found"
	ReasonInvalidDirection = "invalid_direction"
	ReasonAtBoundary       = "at_boundary"
)

// Result tells the caller whether a mutation changed the document.
type Result struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
	ID      string `json:"id,omitempty"` // id of the page or system that changed
}

func Applied() Result {
	return Result{Applied: true}
}

func AppliedTo(id string) Result {
	return Result{Applied: true, ID: id}
}

func Skipped(reason string) Result {
	return Result{Reason: reason}
}

// Outcome is the label used for logs and metrics.
func (r Result) Outcome() string {
	if r.Applied {
		return "applied"
	}
	return "skipped"
}
