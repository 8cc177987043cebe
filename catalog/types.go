// Package catalog builds the article and series metadata catalog for a
// filesystem tree of written articles. A run is a single synchronous pass:
// walk the root, extract frontmatter, resolve series folders, and hand the
// accumulated records to the emitters.
package catalog

// SeriesType tells readers whether the member articles of a series are meant
// to be consumed in order.
type SeriesType string

const (
	SeriesOrdered   SeriesType = "ordered"
	SeriesUnordered SeriesType = "unordered"
)

// Article is one published document. JSON field names are part of the output
// contract and must not change.
type Article struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	Description string   `json:"description,omitempty"`
	Serie       string   `json:"serie,omitempty"`
	Author      string   `json:"author,omitempty"`
	RootPath    string   `json:"rootPath"`
	RawURL      string   `json:"rawUrl"`
}

// PrimaryTag returns the article's first tag, or an empty string when the
// article carries no tags.
func (a Article) PrimaryTag() string {
	if len(a.Tags) == 0 {
		return ""
	}
	return a.Tags[0]
}

// Series is a named collection of articles living under a topic's series
// folder. Slug, NumArticles, and RootPath are always recomputed during a
// scan; the descriptor file is never trusted for them.
type Series struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	NumArticles int        `json:"numArticles"`
	Type        SeriesType `json:"type"`
	RootPath    string     `json:"rootPath"`
}

// Catalog is the accumulated result of one scan. Order follows traversal
// order; nothing is sorted after the fact.
type Catalog struct {
	Articles []Article
	Series   []Series
}
