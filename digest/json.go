package digest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goliatone/go-article-index/catalog"
)

// WriteArticles serializes the full article list to path, overwriting any
// prior content. An empty catalog still emits a JSON array, never null.
func WriteArticles(path string, articles []catalog.Article) error {
	if articles == nil {
		articles = []catalog.Article{}
	}
	return writeJSON(path, articles)
}

// WriteSeries serializes the full series list to path, overwriting any
// prior content.
func WriteSeries(path string, series []catalog.Series) error {
	if series == nil {
		series = []catalog.Series{}
	}
	return writeJSON(path, series)
}

// writeJSON emits compact JSON. encoding/json keeps struct field order
// stable, so unchanged input trees produce byte-identical files across runs.
func writeJSON(path string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("digest: marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("digest: write %s: %w", path, err)
	}
	return nil
}
