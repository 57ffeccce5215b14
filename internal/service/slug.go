package service

import (
	"regexp"
	"strings"
)

var slugSeparatorRuns = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug converts a work title into a URL-safe identifier: the
// title is lower-cased, every run of characters outside [a-z0-9] is
// replaced by a single hyphen, and leading/trailing hyphens are
// trimmed. The function is total; a title with no alphanumerics
// derives an empty slug, which the store treats as a colliding key
// like any other.
func DeriveSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugSeparatorRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
