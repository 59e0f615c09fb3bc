package aggregator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ezselltranscript-SG/newsAPI/pkg/news"
)

// Fetcher fans out to every configured source concurrently and joins all
// results. A failing or slow source degrades to an absent entry; it never
// aborts the batch.
type Fetcher struct {
	sources []news.Source
	timeout time.Duration
}

func NewFetcher(sources []news.Source, timeout time.Duration) *Fetcher {
	return &Fetcher{sources: sources, timeout: timeout}
}

func (f *Fetcher) SourceCount() int {
	return len(f.sources)
}

// FetchAll calls every source with the same per-source limit and returns
// their results keyed by source name. The key is assigned here at dispatch
// time, never taken from the returned data, so two sources can never be
// merged by a label collision. Sources returning no articles are omitted.
func (f *Fetcher) FetchAll(ctx context.Context, perSourceLimit int) map[string][]news.Article {
	var mu sync.Mutex
	var wg sync.WaitGroup

	bySource := make(map[string][]news.Article, len(f.sources))

	for _, source := range f.sources {
		wg.Add(1)
		go func(s news.Source) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()

			articles, err := s.Fetch(fetchCtx, perSourceLimit)
			if err != nil {
				slog.Warn("source fetch failed", "source", s.Name(), "error", err)
				return
			}

			if len(articles) == 0 {
				slog.Debug("source returned no articles", "source", s.Name())
				return
			}

			slog.Info("source fetch complete", "source", s.Name(), "count", len(articles))

			mu.Lock()
			bySource[s.Name()] = articles
			mu.Unlock()
		}(source)
	}

	wg.Wait()

	return bySource
}
