package news

import (
	"context"
	"time"
)

// Article is the canonical shape every provider is normalized into.
// Adapters only emit fully populated records; anything missing a title,
// URL or parseable timestamp is dropped at the adapter boundary.
type Article struct {
	Title       string
	URL         string
	Source      string
	PublishedAt time.Time
}

// Source fetches up to limit articles from one provider. Implementations
// may over-fetch from the underlying API to compensate for filtering loss,
// but never return more than 2x limit. No ordering is guaranteed to the
// caller.
type Source interface {
	Fetch(ctx context.Context, limit int) ([]Article, error)
	Name() string
}
