package util

import (
	"github.com/gosimple/slug"
)

// Slugify derives a URL-safe identifier from a human title: lower-cased, runs
// of non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Deterministic, no collision handling: two entities
// created with the same title receive the same slug and the second becomes
// unreachable by slug lookup.
func Slugify(title string) string {
	return slug.Make(title)
}
