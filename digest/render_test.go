package digest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-article-index/catalog"
)

func fixedClock() time.Time {
	return time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func TestRenderDigestFormat(t *testing.T) {
	groups := []catalog.Group{
		{
			Key: "Rust",
			Articles: []catalog.Article{
				{Title: "First Post", CreatedAt: "2021-03-12", Description: "about rust"},
			},
		},
		{
			Key: "Others",
			Articles: []catalog.Article{
				{Title: "Plain Note", Description: "no tags"},
			},
		},
	}

	out := string(NewRendererAt(fixedClock).Render([]byte("# My Articles\n"), groups))

	if !strings.HasPrefix(out, "# My Articles\n") {
		t.Fatalf("intro must be preserved verbatim at the top:\n%s", out)
	}
	if !strings.Contains(out, "### Rust\n") {
		t.Fatalf("missing Rust heading:\n%s", out)
	}
	if !strings.Contains(out, "12 Mar,2021<br>\n**First Post**<br>\nabout rust\n\n") {
		t.Fatalf("entry format mismatch:\n%s", out)
	}
	// Missing createdAt falls back to the injected clock, display only.
	if !strings.Contains(out, "01 Jun,2021<br>\n**Plain Note**<br>\nno tags\n\n") {
		t.Fatalf("fallback date entry mismatch:\n%s", out)
	}

	rustIdx := strings.Index(out, "### Rust")
	othersIdx := strings.Index(out, "### Others")
	if rustIdx < 0 || othersIdx < 0 || rustIdx > othersIdx {
		t.Fatalf("group sections must follow aggregator order:\n%s", out)
	}
}

func TestRenderAcceptsRFC3339Dates(t *testing.T) {
	groups := []catalog.Group{
		{Key: "Go", Articles: []catalog.Article{
			{Title: "Timestamps", CreatedAt: "2020-12-25T10:30:00Z", Description: "d"},
		}},
	}

	out := string(NewRendererAt(fixedClock).Render(nil, groups))
	if !strings.Contains(out, "25 Dec,2020<br>") {
		t.Fatalf("expected RFC3339 createdAt to be formatted:\n%s", out)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	groups := []catalog.Group{
		{Key: "Go", Articles: []catalog.Article{
			{Title: "A", CreatedAt: "2020-01-02", Description: "d"},
		}},
	}

	r := NewRendererAt(fixedClock)
	first := r.Render([]byte("intro\n"), groups)
	second := r.Render([]byte("intro\n"), groups)
	if string(first) != string(second) {
		t.Fatal("renders of identical input must be identical")
	}
}

func TestWriteREADMEOverwrites(t *testing.T) {
	dir := t.TempDir()
	intro := filepath.Join(dir, "intro.md")
	readme := filepath.Join(dir, "README.md")

	if err := os.WriteFile(intro, []byte("# Intro\n"), 0o644); err != nil {
		t.Fatalf("write intro: %v", err)
	}
	if err := os.WriteFile(readme, []byte("stale content from a previous run"), 0o644); err != nil {
		t.Fatalf("write stale readme: %v", err)
	}

	groups := []catalog.Group{
		{Key: "Go", Articles: []catalog.Article{
			{Title: "A", CreatedAt: "2020-01-02", Description: "d"},
		}},
	}
	if err := NewRendererAt(fixedClock).WriteREADME(intro, readme, groups); err != nil {
		t.Fatalf("WriteREADME: %v", err)
	}

	data, err := os.ReadFile(readme)
	if err != nil {
		t.Fatalf("read readme: %v", err)
	}
	if strings.Contains(string(data), "stale content") {
		t.Fatal("README must be fully overwritten")
	}
	if !strings.HasPrefix(string(data), "# Intro\n") {
		t.Fatalf("README must start with the intro:\n%s", data)
	}
}

func TestRenderHTMLPreview(t *testing.T) {
	html, err := RenderHTML([]byte("### Rust\n\n12 Mar,2021<br>\n**First Post**<br>\nabout rust\n"))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<h3") || !strings.Contains(out, "Rust") {
		t.Fatalf("expected heading in preview html:\n%s", out)
	}
	if !strings.Contains(out, "<strong>First Post</strong>") {
		t.Fatalf("expected bold title in preview html:\n%s", out)
	}
	if !strings.Contains(out, "<br>") {
		t.Fatalf("expected raw <br> passthrough in preview html:\n%s", out)
	}
}
