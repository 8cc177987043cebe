package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func document(title string, tags ...string) string {
	doc := "---\ntitle: " + title + "\n"
	if len(tags) > 0 {
		doc += "tags:\n"
		for _, tag := range tags {
			doc += "  - " + tag + "\n"
		}
	}
	doc += "createdAt: \"2021-03-12\"\ndescription: about " + title + "\n---\nBody.\n"
	return doc
}

func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeDocument(t, root, "coding/first-post/article.md", document("First Post", "rust"))
	if err := os.MkdirAll(filepath.Join(root, "coding", "drafts"), 0o755); err != nil {
		t.Fatalf("mkdir drafts: %v", err)
	}

	writeDocument(t, root, "coding/series/my-series/part-one/article.md", document("Part One", "rust"))
	writeDocument(t, root, "coding/series/my-series/part-two/article.md", document("Part Two", "go"))
	writeDocument(t, root, "coding/series/my-series/info.json",
		`{"title":"My Series","description":"d","type":"ordered"}`)

	writeDocument(t, root, "coding/series/no-descriptor/lone/article.md", document("Lone"))

	writeDocument(t, root, "coding/series/untitled/member/article.md", document("Orphan Member"))
	writeDocument(t, root, "coding/series/untitled/info.json",
		`{"description":"x","type":"unordered"}`)

	writeDocument(t, root, "notes/plain-note/article.md", document("Plain Note"))

	return root
}

func scanTree(t *testing.T, root string) *Catalog {
	t.Helper()
	scanner, err := NewScanner(root, NewRawURLBuilder("https://example.com/base"), nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	cat, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return cat
}

func TestScanAccumulatesArticlesInTraversalOrder(t *testing.T) {
	cat := scanTree(t, buildTree(t))

	wantTitles := []string{"First Post", "Part One", "Part Two", "Orphan Member", "Plain Note"}
	if len(cat.Articles) != len(wantTitles) {
		t.Fatalf("expected %d articles, got %d: %#v", len(wantTitles), len(cat.Articles), cat.Articles)
	}
	for i, want := range wantTitles {
		if cat.Articles[i].Title != want {
			t.Fatalf("article %d: got %q, want %q", i, cat.Articles[i].Title, want)
		}
	}
}

func TestScanSeriesRoundTrip(t *testing.T) {
	cat := scanTree(t, buildTree(t))

	if len(cat.Series) != 1 {
		t.Fatalf("expected exactly one series, got %#v", cat.Series)
	}
	series := cat.Series[0]
	if series.Title != "My Series" {
		t.Fatalf("series title mismatch, got %q", series.Title)
	}
	if series.Slug != "my-series" {
		t.Fatalf("series slug mismatch, got %q", series.Slug)
	}
	if series.NumArticles != 2 {
		t.Fatalf("expected numArticles 2, got %d", series.NumArticles)
	}
	if series.Type != SeriesOrdered {
		t.Fatalf("series type mismatch, got %q", series.Type)
	}
	if series.RootPath != "coding/series/my-series" {
		t.Fatalf("series rootPath mismatch, got %q", series.RootPath)
	}

	members := 0
	for _, article := range cat.Articles {
		if article.Serie == "My Series" {
			members++
		}
	}
	if members != 2 {
		t.Fatalf("expected 2 articles stamped with the series title, got %d", members)
	}
}

func TestScanUntitledSeriesKeepsMemberArticles(t *testing.T) {
	cat := scanTree(t, buildTree(t))

	for _, series := range cat.Series {
		if series.Title == "" {
			t.Fatalf("untitled series must not appear in the series list: %#v", series)
		}
	}

	found := false
	for _, article := range cat.Articles {
		if article.Title == "Orphan Member" {
			found = true
			if article.Serie != "" {
				t.Fatalf("orphan member should carry the empty descriptor title, got %q", article.Serie)
			}
		}
	}
	if !found {
		t.Fatal("expected the untitled series' member article to stay in the global list")
	}
}

func TestScanStampsRawURLs(t *testing.T) {
	cat := scanTree(t, buildTree(t))

	byTitle := make(map[string]Article, len(cat.Articles))
	for _, article := range cat.Articles {
		byTitle[article.Title] = article
	}

	if got := byTitle["First Post"].RawURL; got != "https://example.com/base/coding/first-post/article.md" {
		t.Fatalf("standalone raw url mismatch, got %q", got)
	}
	if got := byTitle["Part One"].RawURL; got != "https://example.com/base/coding/series/my-series/part-one/article.md" {
		t.Fatalf("series raw url mismatch, got %q", got)
	}
}

func TestNewScannerValidatesRoot(t *testing.T) {
	if _, err := NewScanner("", NewRawURLBuilder("https://example.com"), nil); !errors.Is(err, ErrRootRequired) {
		t.Fatalf("expected ErrRootRequired, got %v", err)
	}

	if _, err := NewScanner(filepath.Join(t.TempDir(), "missing"), NewRawURLBuilder("https://example.com"), nil); err == nil {
		t.Fatal("expected error for missing root")
	}

	file := filepath.Join(t.TempDir(), "root.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := NewScanner(file, NewRawURLBuilder("https://example.com"), nil); !errors.Is(err, ErrRootNotDirectory) {
		t.Fatalf("expected ErrRootNotDirectory, got %v", err)
	}
}

func TestScanPropagatesSeriesDirStatErrors(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	writeDocument(t, root, "coding/series/my-series/info.json",
		`{"title":"My Series","description":"d","type":"ordered"}`)

	// Readable but not traversable: listing the topic works, stat on the
	// series directory fails with a permission error that must propagate.
	topic := filepath.Join(root, "coding")
	if err := os.Chmod(topic, 0o644); err != nil {
		t.Fatalf("chmod topic: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(topic, 0o755) })

	scanner, err := NewScanner(root, NewRawURLBuilder("https://example.com"), nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	if _, err := scanner.Scan(context.Background()); err == nil {
		t.Fatal("expected stat error on the series directory to propagate")
	}
}

func TestScanMalformedDescriptorFails(t *testing.T) {
	root := t.TempDir()
	writeDocument(t, root, "coding/series/broken/info.json", `{"title": `)

	scanner, err := NewScanner(root, NewRawURLBuilder("https://example.com"), nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	if _, err := scanner.Scan(context.Background()); !errors.Is(err, ErrDescriptorInvalid) {
		t.Fatalf("expected ErrDescriptorInvalid, got %v", err)
	}
}
