package catalog

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FallbackGroup collects articles that carry no tags.
const FallbackGroup = "Others"

// Group is one digest section: a display key and its member articles in
// traversal encounter order.
type Group struct {
	Key      string
	Articles []Article
}

// GroupByPrimaryTag groups articles by their capitalized first tag, or
// FallbackGroup when an article has no tags. Groups appear in first-seen
// order; the first article encountered for a tag opens its section, which
// is what fixes the digest's rendering order.
func GroupByPrimaryTag(articles []Article) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, article := range articles {
		key := FallbackGroup
		if tag := article.PrimaryTag(); tag != "" {
			key = Capitalize(tag)
		}

		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{Key: key})
		}
		groups[pos].Articles = append(groups[pos].Articles, article)
	}

	return groups
}

// DistinctPrimaryTags returns the capitalized set of primary tags present in
// the list, sorted ascending with locale-aware collation. Articles without
// tags contribute nothing here even though they still group under
// FallbackGroup.
func DistinctPrimaryTags(articles []Article) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, article := range articles {
		tag := article.PrimaryTag()
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	collator := collate.New(language.English)
	sort.Slice(tags, func(i, j int) bool {
		return collator.CompareString(tags[i], tags[j]) < 0
	})

	for i, tag := range tags {
		tags[i] = Capitalize(tag)
	}
	return tags
}

// Capitalize uppercases the first rune and lowercases the remainder. Stored
// tags are fully uppercased, so this is what turns "RUST" into the "Rust"
// group key.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
