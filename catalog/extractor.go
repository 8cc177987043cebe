package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-article-index/internal/logging"
	"github.com/goliatone/go-article-index/pkg/interfaces"
)

// documentFileName is the conventional name of the document inside every
// article folder.
const documentFileName = "article.md"

// Extractor reads a single article document and turns its frontmatter into
// an Article record. A missing file or a document without a title is the
// expected, frequent "no article" case and yields a nil record rather than
// an error; only unexpected I/O failures propagate.
type Extractor struct {
	root   string
	logger interfaces.Logger
}

// NewExtractor constructs an extractor. RootPath values on extracted
// articles are computed relative to root.
func NewExtractor(root string, logger interfaces.Logger) *Extractor {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Extractor{
		root:   filepath.Clean(root),
		logger: logger,
	}
}

type frontMatterEnvelope struct {
	Title       string   `yaml:"title"`
	Tags        []string `yaml:"tags"`
	CreatedAt   string   `yaml:"createdAt"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
}

// Extract parses the document at path and returns a populated Article, or
// nil when the path does not exist or the frontmatter lacks a title. The
// caller supplies the raw source URL since it differs between standalone
// articles and series members.
func (e *Extractor) Extract(path, rawURL string) (*Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// A regular file in the path prefix surfaces as ENOTDIR rather
		// than ENOENT (series folders contain info.json, which gets
		// enumerated like any other entry); both mean the document is
		// simply not there.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: read document %s: %w", path, err)
	}

	var meta frontMatterEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
		e.logger.Debug("catalog.extract.skipped", "path", path, "reason", "malformed frontmatter", "error", err)
		return nil, nil
	}

	if strings.TrimSpace(meta.Title) == "" {
		e.logger.Debug("catalog.extract.skipped", "path", path, "reason", "missing title")
		return nil, nil
	}

	rootPath, err := e.relativeDir(path)
	if err != nil {
		return nil, err
	}

	return &Article{
		Title:       meta.Title,
		Slug:        Slugify(meta.Title),
		Tags:        uppercaseTags(meta.Tags),
		CreatedAt:   meta.CreatedAt,
		Description: meta.Description,
		Author:      meta.Author,
		RootPath:    rootPath,
		RawURL:      rawURL,
	}, nil
}

func (e *Extractor) relativeDir(path string) (string, error) {
	rel, err := filepath.Rel(e.root, filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("catalog: relativize %s: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

func uppercaseTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = strings.ToUpper(tag)
	}
	return out
}
