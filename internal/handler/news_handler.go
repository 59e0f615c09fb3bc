package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ezselltranscript-SG/newsAPI/pkg/news"
)

const defaultLimit = 10

type NewsProvider interface {
	GetLatestNews(ctx context.Context, limit int) []news.Article
	SourceCount() int
}

type NewsHandler struct {
	provider NewsProvider
}

func NewNewsHandler(provider NewsProvider) *NewsHandler {
	return &NewsHandler{provider: provider}
}

func (h *NewsHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to News Aggregator API"})
}

// GetLatestNews serves the aggregated feed. The limit query parameter is
// advisory; the aggregator clamps it into the configured range, so an
// out-of-range or invalid value still produces a successful response.
func (h *NewsHandler) GetLatestNews(c *gin.Context) {
	limit := getQueryLimit(c)

	articles := h.provider.GetLatestNews(c.Request.Context(), limit)

	res := NewsResponse{News: make([]ArticleResponse, 0, len(articles))}
	for _, a := range articles {
		res.News = append(res.News, ArticleResponse{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"sources": h.provider.SourceCount(),
	})
}

func getQueryLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", raw, "default", defaultLimit)
		return defaultLimit
	}

	return limit
}
