package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func rssBody(items string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>test</description>
%s
  </channel>
</rss>`, items)
}

func rssItem(title, link, pubDate string) string {
	return fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <pubDate>%s</pubDate>
    </item>
`, title, link, pubDate)
}

func TestRSSFetchInterleavesFeeds(t *testing.T) {
	worldSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody(
			rssItem("World story A", "https://example.com/world-a", "Thu, 26 Feb 2026 12:00:00 GMT") +
				rssItem("World story B", "https://example.com/world-b", "Thu, 26 Feb 2026 08:00:00 GMT"))))
	}))
	defer worldSrv.Close()

	techSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody(
			rssItem("Tech story", "https://example.com/tech", "Thu, 26 Feb 2026 10:00:00 GMT"))))
	}))
	defer techSrv.Close()

	source := NewRSSSource("BBC News", []string{worldSrv.URL, techSrv.URL})

	articles, err := source.Fetch(context.Background(), 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(articles))

	// sorted across feeds, not per feed
	assert.Equal(t, "World story A", articles[0].Title)
	assert.Equal(t, "Tech story", articles[1].Title)
	assert.Equal(t, "World story B", articles[2].Title)

	for _, a := range articles {
		assert.Equal(t, "BBC News", a.Source)
	}
}

func TestRSSFetchTruncatesToTwiceLimit(t *testing.T) {
	var items string
	for i := 0; i < 10; i++ {
		items += rssItem(
			fmt.Sprintf("Story %d", i),
			fmt.Sprintf("https://example.com/story-%d", i),
			fmt.Sprintf("Thu, 26 Feb 2026 %02d:00:00 GMT", 10+i),
		)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody(items)))
	}))
	defer srv.Close()

	source := NewRSSSource("BBC News", []string{srv.URL})

	articles, err := source.Fetch(context.Background(), 3)

	assert.Equal(t, nil, err)
	assert.Equal(t, 6, len(articles))
	assert.Equal(t, "Story 9", articles[0].Title)
}

func TestRSSFetchDropsUndatedEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody(
			`    <item>
      <title>No date</title>
      <link>https://example.com/no-date</link>
    </item>
` + rssItem("Dated", "https://example.com/dated", "Thu, 26 Feb 2026 12:00:00 GMT"))))
	}))
	defer srv.Close()

	source := NewRSSSource("BBC News", []string{srv.URL})

	articles, err := source.Fetch(context.Background(), 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Dated", articles[0].Title)
}

func TestRSSFetchUnreachableFeed(t *testing.T) {
	source := NewRSSSource("BBC News", []string{"http://127.0.0.1:1/rss.xml"})

	articles, err := source.Fetch(context.Background(), 10)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}
