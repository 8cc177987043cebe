package catalog

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	rawRouteGroup      = "raw"
	routeArticle       = "article"
	routeSeriesArticle = "series_article"
)

// RawURLBuilder constructs absolute URLs pointing at the raw document source
// for a given article location. The extractor never derives its own
// repository location; the scanner builds the final URL per call, which
// differs between standalone articles and series members.
type RawURLBuilder struct {
	manager *urlkit.RouteManager
}

// NewRawURLBuilder registers the raw-source routes against the configured
// source-hosting base URL (e.g. a raw.githubusercontent.com branch root).
func NewRawURLBuilder(baseURL string) *RawURLBuilder {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    rawRouteGroup,
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					routeArticle:       "/:topic/:article/" + documentFileName,
					routeSeriesArticle: "/:topic/" + seriesDirName + "/:series/:article/" + documentFileName,
				},
			},
		},
	})

	return &RawURLBuilder{manager: manager}
}

// Article builds the raw URL for a standalone article folder.
func (b *RawURLBuilder) Article(topic, article string) (string, error) {
	return b.build(routeArticle, map[string]any{
		"topic":   topic,
		"article": article,
	})
}

// SeriesArticle builds the raw URL for a series member folder.
func (b *RawURLBuilder) SeriesArticle(topic, series, article string) (string, error) {
	return b.build(routeSeriesArticle, map[string]any{
		"topic":   topic,
		"series":  series,
		"article": article,
	})
}

func (b *RawURLBuilder) build(route string, params map[string]any) (url string, err error) {
	if b == nil || b.manager == nil {
		return "", fmt.Errorf("catalog: raw url builder not configured")
	}

	// urlkit panics on unknown groups/routes; surface that as an error.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("catalog: raw url route %q: %v", route, rec)
		}
	}()

	builder := b.manager.Group(rawRouteGroup).Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	return builder.Build()
}
