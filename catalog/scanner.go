package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-article-index/internal/logging"
	"github.com/goliatone/go-article-index/pkg/interfaces"
)

const (
	// seriesDirName is the reserved subdirectory holding a topic's series;
	// it is never treated as a standalone article folder.
	seriesDirName = "series"
	// seriesDescriptorName is the required descriptor inside a series folder.
	seriesDescriptorName = "info.json"
)

// Scanner walks a root directory of topic folders and accumulates the
// article and series catalog. The traversal is read-only, sequential, and
// runs to completion; documents that cannot be extracted are skipped, not
// failed.
type Scanner struct {
	root      string
	urls      *RawURLBuilder
	extractor *Extractor
	logger    interfaces.Logger
}

// NewScanner validates the root path before any traversal I/O happens and
// returns a scanner bound to it.
func NewScanner(root string, urls *RawURLBuilder, logger interfaces.Logger) (*Scanner, error) {
	if strings.TrimSpace(root) == "" {
		return nil, ErrRootRequired
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("catalog: stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	if logger == nil {
		logger = logging.NoOp()
	}

	return &Scanner{
		root:      filepath.Clean(root),
		urls:      urls,
		extractor: NewExtractor(root, logger),
		logger:    logger,
	}, nil
}

// seriesDescriptor is the trusted subset of info.json. Slug, member count,
// and root path are recomputed during the scan.
type seriesDescriptor struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        SeriesType `json:"type"`
}

// Scan traverses the tree once and returns the accumulated catalog. Topic
// folders are the immediate subdirectories of the root; their
// subdirectories are standalone article folders, except the reserved
// `series` directory, whose subdirectories are series candidates.
func (s *Scanner) Scan(ctx context.Context) (*Catalog, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	topics, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("catalog: read root %s: %w", s.root, err)
	}

	cat := &Catalog{}
	for _, topic := range topics {
		if !topic.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.scanTopic(cat, topic.Name()); err != nil {
			return nil, err
		}
	}

	s.logger.Info("catalog.scan.completed",
		"articles", len(cat.Articles),
		"series", len(cat.Series),
	)
	return cat, nil
}

func (s *Scanner) scanTopic(cat *Catalog, topic string) error {
	topicPath := filepath.Join(s.root, topic)
	entries, err := os.ReadDir(topicPath)
	if err != nil {
		return fmt.Errorf("catalog: read topic %s: %w", topicPath, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == seriesDirName {
			continue
		}

		rawURL, err := s.urls.Article(topic, entry.Name())
		if err != nil {
			return err
		}

		article, err := s.extractor.Extract(
			filepath.Join(topicPath, entry.Name(), documentFileName), rawURL)
		if err != nil {
			return err
		}
		if article != nil {
			cat.Articles = append(cat.Articles, *article)
		}
	}

	seriesRoot := filepath.Join(topicPath, seriesDirName)
	info, err := os.Stat(seriesRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("catalog: stat series dir %s: %w", seriesRoot, err)
	}
	if !info.IsDir() {
		return nil
	}

	candidates, err := os.ReadDir(seriesRoot)
	if err != nil {
		return fmt.Errorf("catalog: read series dir %s: %w", seriesRoot, err)
	}
	for _, candidate := range candidates {
		if !candidate.IsDir() {
			continue
		}
		if err := s.resolveSeries(cat, topic, candidate.Name()); err != nil {
			return err
		}
	}
	return nil
}

// resolveSeries enumerates every entry of a series folder (files and
// folders alike) and runs the extractor against each; successfully parsed
// members are stamped with the series title and merged into the global
// article list. A descriptor without a title drops the series record but
// keeps the already-merged articles, matching the historical output.
func (s *Scanner) resolveSeries(cat *Catalog, topic, name string) error {
	seriesPath := filepath.Join(s.root, topic, seriesDirName, name)
	descriptorPath := filepath.Join(seriesPath, seriesDescriptorName)

	data, err := os.ReadFile(descriptorPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("catalog.series.skipped", "path", seriesPath, "reason", "missing descriptor")
			return nil
		}
		return fmt.Errorf("catalog: read descriptor %s: %w", descriptorPath, err)
	}

	var desc seriesDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDescriptorInvalid, descriptorPath, err)
	}

	entries, err := os.ReadDir(seriesPath)
	if err != nil {
		return fmt.Errorf("catalog: read series %s: %w", seriesPath, err)
	}

	members := 0
	for _, entry := range entries {
		rawURL, err := s.urls.SeriesArticle(topic, name, entry.Name())
		if err != nil {
			return err
		}

		article, err := s.extractor.Extract(
			filepath.Join(seriesPath, entry.Name(), documentFileName), rawURL)
		if err != nil {
			return err
		}
		if article == nil {
			continue
		}

		article.Serie = desc.Title
		cat.Articles = append(cat.Articles, *article)
		members++
	}

	if strings.TrimSpace(desc.Title) == "" {
		s.logger.Warn("catalog.series.dropped",
			"path", seriesPath,
			"reason", "untitled descriptor",
			"members_kept", members,
		)
		return nil
	}

	cat.Series = append(cat.Series, Series{
		Title:       desc.Title,
		Slug:        Slugify(desc.Title),
		Description: desc.Description,
		NumArticles: members,
		Type:        desc.Type,
		RootPath:    filepath.ToSlash(filepath.Join(topic, seriesDirName, name)),
	})
	return nil
}
