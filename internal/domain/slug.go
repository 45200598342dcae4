package domain

import "strings"

var slugReplacer = strings.NewReplacer(
	" ", "-",
	"(", "",
	")", "",
	"&", "",
	"/", "-",
)

// NameToSlug derives the URL-safe slug for a display name: lowercased,
// spaces and slashes become hyphens, parentheses and ampersands are dropped.
// Slugs are derived, never stored, so lookups recompute them per category.
func NameToSlug(name string) string {
	return slugReplacer.Replace(strings.ToLower(name))
}
