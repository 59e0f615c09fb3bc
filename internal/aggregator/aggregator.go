package aggregator

import (
	"context"
	"log/slog"

	"github.com/ezselltranscript-SG/newsAPI/pkg/news"
)

// Aggregator is the single entry point for the HTTP layer: fetch from all
// sources, then merge. It never fails; the worst outcome is an empty list.
type Aggregator struct {
	fetcher      *Fetcher
	limitFloor   int
	limitCeiling int
}

func New(fetcher *Fetcher, limitFloor, limitCeiling int) *Aggregator {
	return &Aggregator{
		fetcher:      fetcher,
		limitFloor:   limitFloor,
		limitCeiling: limitCeiling,
	}
}

func (a *Aggregator) SourceCount() int {
	return a.fetcher.SourceCount()
}

// GetLatestNews returns at most limit articles across all sources, newest
// first. The limit is clamped into the configured [floor, ceiling] range.
func (a *Aggregator) GetLatestNews(ctx context.Context, limit int) []news.Article {
	limit = a.clampLimit(limit)

	numSources := a.fetcher.SourceCount()
	if numSources == 0 {
		return []news.Article{}
	}

	// over-fetch margin so the guarantee and fill passes both have
	// material to draw from
	perSourceLimit := limit/numSources + minPerSource

	bySource := a.fetcher.FetchAll(ctx, perSourceLimit)

	merged := Merge(bySource, limit)

	slog.Info("aggregation complete", "limit", limit, "sources", len(bySource), "articles", len(merged))

	return merged
}

func (a *Aggregator) clampLimit(limit int) int {
	if limit < a.limitFloor {
		return a.limitFloor
	}
	if limit > a.limitCeiling {
		return a.limitCeiling
	}
	return limit
}
