// Package digest turns a scanned catalog into the three output artifacts:
// the two JSON metadata files and the regenerated README. Every artifact is
// fully overwritten on each run; there is no merging or incremental update.
package digest

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/goliatone/go-article-index/catalog"
)

// displayDateLayout renders createdAt values as e.g. "12 Mar,2021".
const displayDateLayout = "02 Jan,2006"

// createdAtLayouts are the accepted createdAt formats, tried in order.
var createdAtLayouts = []string{time.RFC3339, "2006-01-02"}

// Renderer produces the README digest markdown. The clock is injectable so
// the current-date fallback stays testable.
type Renderer struct {
	now func() time.Time
}

// NewRenderer returns a renderer using the wall clock.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// NewRendererAt returns a renderer with a fixed clock.
func NewRendererAt(now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{now: now}
}

// Render concatenates the static intro with one section per group. Each
// section is a heading followed by one formatted entry per article: the
// display date, a hard break, the bolded title, a hard break, the
// description, and a blank line.
func (r *Renderer) Render(intro []byte, groups []catalog.Group) []byte {
	var buf bytes.Buffer
	buf.Write(intro)

	for _, group := range groups {
		buf.WriteString("\n### ")
		buf.WriteString(group.Key)
		buf.WriteString("\n\n")

		for _, article := range group.Articles {
			buf.WriteString(r.displayDate(article.CreatedAt))
			buf.WriteString("<br>\n**")
			buf.WriteString(article.Title)
			buf.WriteString("**<br>\n")
			buf.WriteString(article.Description)
			buf.WriteString("\n\n")
		}
	}

	return buf.Bytes()
}

// WriteREADME reads the intro document verbatim, renders the digest after
// it, and overwrites the README at outPath.
func (r *Renderer) WriteREADME(introPath, outPath string, groups []catalog.Group) error {
	intro, err := os.ReadFile(introPath)
	if err != nil {
		return fmt.Errorf("digest: read intro %s: %w", introPath, err)
	}

	if err := os.WriteFile(outPath, r.Render(intro, groups), 0o644); err != nil {
		return fmt.Errorf("digest: write readme %s: %w", outPath, err)
	}
	return nil
}

// displayDate formats a createdAt string for the digest, falling back to
// the current date when the value is absent or unparsable. The fallback is
// display-only; stored metadata keeps the original string.
func (r *Renderer) displayDate(createdAt string) string {
	if createdAt != "" {
		for _, layout := range createdAtLayouts {
			if t, err := time.Parse(layout, createdAt); err == nil {
				return t.Format(displayDateLayout)
			}
		}
	}
	return r.now().Format(displayDateLayout)
}
