package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ezselltranscript-SG/newsAPI/internal/aggregator"
	"github.com/ezselltranscript-SG/newsAPI/internal/config"
	"github.com/ezselltranscript-SG/newsAPI/internal/handler"
	"github.com/ezselltranscript-SG/newsAPI/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var sources []news.Source
	if cfg.NewsAPIKey != "" {
		sources = append(sources, news.NewNewsAPIClient(cfg.NewsAPIKey))
	}
	if cfg.GuardianAPIKey != "" {
		sources = append(sources, news.NewGuardianClient(cfg.GuardianAPIKey))
	}
	// the Reuters client tolerates an empty key itself and contributes
	// nothing without one
	sources = append(sources, news.NewReutersClient(cfg.ReutersAPIKey))
	sources = append(sources, news.NewRSSSource("BBC News", cfg.FeedURLs))

	fetcher := aggregator.NewFetcher(sources, cfg.FetchTimeout)
	agg := aggregator.New(fetcher, cfg.LimitFloor, cfg.LimitCeiling)
	newsHandler := handler.NewNewsHandler(agg)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	r.Use(handler.RequestID())

	r.GET("/", newsHandler.GetRoot)
	r.GET("/news/latest", newsHandler.GetLatestNews)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
