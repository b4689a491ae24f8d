package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Gnaveen516/Trade-Opportunities-API/db"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/auth"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/handler"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/middleware"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/ratelimit"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/repository"
	"github.com/Gnaveen516/Trade-Opportunities-API/pkg/llm"
	"github.com/Gnaveen516/Trade-Opportunities-API/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	keys, err := auth.ParseKeys(os.Getenv("API_KEYS"))
	if err != nil {
		log.Fatalf("error loading API keys: %v", err)
	}
	keyring := auth.NewStaticKeyring(keys)

	window := envDuration("RATE_LIMIT_WINDOW", ratelimit.DefaultWindow)
	maxRequests := envInt("RATE_LIMIT_REQUESTS", ratelimit.DefaultMaxRequests)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store ratelimit.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if err := db.ConnectRedis(redisURL); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		store = ratelimit.NewRedisStore(db.Redis, window)
	} else {
		memStore := ratelimit.NewMemoryStore(ratelimit.WithIdleTTL(10 * window))
		memStore.StartJanitor(ctx, 2*window)
		store = memStore
	}
	limiter := ratelimit.New(store, window, maxRequests)

	analyzer, err := buildAnalyzer()
	if err != nil {
		log.Fatalf("error configuring model provider: %v", err)
	}
	retrier := llm.NewRetrier(analyzer, llm.RetryPolicy{
		MaxAttempts: envInt("LLM_MAX_ATTEMPTS", llm.DefaultMaxAttempts),
		BaseDelay:   envDuration("LLM_BASE_DELAY", llm.DefaultBaseDelay),
	})

	var newsClient news.SectorClient
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		newsClient = news.NewFinnhubClient(key)
	} else {
		newsClient = news.NewCatalogClient()
	}

	var archive handler.ReportArchive
	var reportStore handler.ReportStore
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		if err := db.Connect(connStr); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		repo := repository.NewReportRepository(db.DB)
		archive = repo
		reportStore = repo
	} else {
		slog.Info("DATABASE_URL not set, report archive disabled")
	}

	analyzeHandler := handler.NewAnalyzeHandler(newsClient, retrier, archive)
	reportHandler := handler.NewReportHandler(reportStore)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/health", reportHandler.GetHealth)

	protected := r.Group("/", middleware.Auth(keyring), middleware.RateLimit(limiter))
	protected.GET("/analyze/:sector", analyzeHandler.Analyze)
	if reportStore != nil {
		protected.GET("/reports", reportHandler.GetReports)
		protected.GET("/reports/:id", reportHandler.GetReport)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func buildAnalyzer() (llm.Analyzer, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		return llm.NewGeminiClient(os.Getenv("GEMINI_API_KEY")), nil
	case "anthropic":
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY")), nil
	case "openai":
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY")), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer env value, using default", "name", name, "value", v)
		return fallback
	}
	return n
}

func envDuration(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		slog.Warn("invalid duration env value, using default", "name", name, "value", v)
		return fallback
	}
	return time.Duration(secs) * time.Second
}
