package catalog

import (
	"regexp"
	"strings"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapsePattern = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL-safe identifier from a human-readable title:
// lowercase, trim, strip everything outside word/space/hyphen characters,
// collapse whitespace/underscore/hyphen runs into a single hyphen, and trim
// leading/trailing hyphens. Pure and deterministic; uniqueness across the
// corpus is not guaranteed.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = slugCollapsePattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
