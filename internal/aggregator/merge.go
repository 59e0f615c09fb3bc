package aggregator

import (
	"sort"

	"github.com/ezselltranscript-SG/newsAPI/pkg/news"
)

// minPerSource is the guaranteed number of slots each contributing source
// gets before remaining capacity is filled by recency.
const minPerSource = 5

// Merge combines per-source article lists into one list of at most limit
// entries, newest first. Every contributing source is guaranteed up to
// minPerSource slots; leftover capacity is split evenly across sources.
// A naive global top-N by date would let one high-volume feed crowd out
// slower sources entirely.
//
// When only a few thin sources are present the final truncation can hand
// all slots to one of them; that is the intended degenerate behavior.
func Merge(bySource map[string][]news.Article, limit int) []news.Article {
	if len(bySource) == 0 {
		return []news.Article{}
	}

	// map iteration order is random; fix it so identical inputs always
	// produce identical output
	names := make([]string, 0, len(bySource))
	for name := range bySource {
		names = append(names, name)
	}
	sort.Strings(names)

	sorted := make(map[string][]news.Article, len(bySource))
	for _, name := range names {
		list := append([]news.Article(nil), bySource[name]...)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PublishedAt.After(list[j].PublishedAt)
		})
		sorted[name] = list
	}

	var merged []news.Article

	// guarantee pass: the newest minPerSource from every source, short
	// sources contribute what they have
	for _, name := range names {
		list := sorted[name]
		n := minPerSource
		if len(list) < n {
			n = len(list)
		}
		merged = append(merged, list[:n]...)
	}

	// fill pass: split remaining capacity evenly, continuing past each
	// source's guaranteed slice
	remaining := limit - len(merged)
	if remaining > 0 {
		additionalPerSource := remaining / len(bySource)
		if additionalPerSource > 0 {
			for _, name := range names {
				list := sorted[name]
				if len(list) <= minPerSource {
					continue
				}
				extra := list[minPerSource:]
				if len(extra) > additionalPerSource {
					extra = extra[:additionalPerSource]
				}
				merged = append(merged, extra...)
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	// the guarantee pass may overshoot the limit on its own; this bound
	// is what enforces it
	if len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
