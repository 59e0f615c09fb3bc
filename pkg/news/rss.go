package news

import (
	"context"
	"sort"

	"github.com/mmcdole/gofeed"
)

// RSSSource aggregates several physical feed URLs into one logical source.
type RSSSource struct {
	name   string
	urls   []string
	parser *gofeed.Parser
}

func NewRSSSource(name string, urls []string) *RSSSource {
	return &RSSSource{
		name:   name,
		urls:   urls,
		parser: gofeed.NewParser(),
	}
}

func (s *RSSSource) Name() string {
	return s.name
}

// Fetch parses every configured feed, concatenates their entries, sorts
// the combined set by published time descending and truncates to 2x limit.
// Sorting happens after concatenation so entries interleave correctly
// across feeds.
func (s *RSSSource) Fetch(ctx context.Context, limit int) ([]Article, error) {
	var all []Article

	for _, feedURL := range s.urls {
		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return nil, err
		}

		for _, item := range feed.Items {
			if item.Title == "" || item.Link == "" || item.PublishedParsed == nil {
				continue
			}

			all = append(all, Article{
				Title:       item.Title,
				URL:         item.Link,
				Source:      s.name,
				PublishedAt: *item.PublishedParsed,
			})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	if len(all) > limit*2 {
		all = all[:limit*2]
	}

	return all, nil
}
