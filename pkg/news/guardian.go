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

const guardianBaseURL = "https://content.guardianapis.com/search"

type GuardianClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGuardianClient(apiKey string) *GuardianClient {
	return &GuardianClient{
		apiKey:     apiKey,
		baseURL:    guardianBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GuardianClient) Name() string {
	return "The Guardian"
}

func (c *GuardianClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	params := url.Values{}
	params.Set("api-key", c.apiKey)
	params.Set("page-size", strconv.Itoa(limit*2))
	params.Set("order-by", "newest")
	params.Set("show-fields", "all")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("guardian request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("guardian fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guardian status: %d", resp.StatusCode)
	}

	var raw guardianResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("guardian decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Response.Results))
	for _, item := range raw.Response.Results {
		publishedAt, err := time.Parse(time.RFC3339, item.WebPublicationDate)
		if err != nil || item.WebTitle == "" || item.WebURL == "" {
			continue
		}

		articles = append(articles, Article{
			Title:       item.WebTitle,
			URL:         item.WebURL,
			Source:      c.Name(),
			PublishedAt: publishedAt,
		})
	}

	if len(articles) > limit*2 {
		articles = articles[:limit*2]
	}

	return articles, nil
}

type guardianResponse struct {
	Response guardianResults `json:"response"`
}

type guardianResults struct {
	Results []guardianItem `json:"results"`
}

type guardianItem struct {
	WebTitle           string `json:"webTitle"`
	WebURL             string `json:"webUrl"`
	WebPublicationDate string `json:"webPublicationDate"`
}
