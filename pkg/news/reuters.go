package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const reutersBaseURL = "https://api.reuters.com/v2/feed/news"

type ReutersClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewReutersClient(apiKey string) *ReutersClient {
	return &ReutersClient{
		apiKey:     apiKey,
		baseURL:    reutersBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ReutersClient) Name() string {
	return "Reuters"
}

// Fetch returns nothing when no API key is configured. The source then
// contributes an empty result without touching the network.
func (c *ReutersClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("reuters request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reuters fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reuters status: %d", resp.StatusCode)
	}

	var raw reutersResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reuters decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Results))
	for _, item := range raw.Results {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil || item.Title == "" || item.URL == "" {
			continue
		}

		articles = append(articles, Article{
			Title:       item.Title,
			URL:         item.URL,
			Source:      c.Name(),
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type reutersResponse struct {
	Results []reutersItem `json:"results"`
}

type reutersItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}
