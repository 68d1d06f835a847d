package services

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a page id from a display name.
func Slugify(text string) string {
	return strings.Trim(nonSlugRun.ReplaceAllString(strings.ToLower(text), "-"), "-")
}
