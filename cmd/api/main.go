package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsbrief/internal/config"
	"newsbrief/internal/infra/newsapi"
	"newsbrief/internal/infra/scraper"
	"newsbrief/internal/infra/summarizer"
	"newsbrief/internal/observability/logging"
	"newsbrief/internal/observability/tracing"

	newsUC "newsbrief/internal/usecase/news"
	sumUC "newsbrief/internal/usecase/summarize"

	hhttp "newsbrief/internal/handler/http"
	"newsbrief/internal/handler/http/middleware"
	hnews "newsbrief/internal/handler/http/news"
	"newsbrief/internal/handler/http/requestid"
	hsum "newsbrief/internal/handler/http/summarize"

	_ "newsbrief/docs" // swagger docs
)

// @title           News Brief API
// @version         1.0
// @description     ニュース取得・検索と、記事URLからのAI要約を提供するプロキシAPI

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /

// maxRequestBody caps request bodies; only /api/summarize reads one.
const maxRequestBody = 1 << 20

func main() {
	// .env は任意（存在しなければ環境変数のみ）
	_ = godotenv.Load()

	logger := initLogger()
	cfg := loadConfig(logger)
	catalog := loadCatalog(logger, cfg.CatalogFile)

	components := setupServer(logger, cfg, catalog)
	runServer(logger, cfg, components)
}

// initLogger initializes the JSON logger and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadConfig loads and validates configuration, exiting on any error so
// the server never listens without its API keys.
func loadConfig(logger *slog.Logger) *config.AppConfig {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

func loadCatalog(logger *slog.Logger, path string) *config.NewsCatalog {
	catalog, err := config.LoadCatalog(path)
	if err != nil {
		logger.Error("failed to load news catalog",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}
	return catalog
}

// ServerComponents holds the assembled handler and the breakers it reports on.
type ServerComponents struct {
	Handler  http.Handler
	Breakers []hhttp.Breaker
}

func setupServer(logger *slog.Logger, cfg *config.AppConfig, catalog *config.NewsCatalog) *ServerComponents {
	newsClient := newsapi.NewClient(newsapi.Config{
		APIKey:  cfg.NewsAPI.APIKey,
		BaseURL: cfg.NewsAPI.BaseURL,
		Timeout: cfg.NewsAPI.Timeout,
	})

	articleScraper, err := scraper.New(scraper.Config{
		Timeout:        cfg.Scraper.Timeout,
		MaxBodySize:    cfg.Scraper.MaxBodySize,
		MaxRedirects:   cfg.Scraper.MaxRedirects,
		DenyPrivateIPs: cfg.Scraper.DenyPrivateIPs,
	}, cfg.Scraper.Strategy)
	if err != nil {
		logger.Error("failed to create scraper", slog.Any("error", err))
		os.Exit(1)
	}

	model, err := summarizer.New(summarizer.Config{
		Provider:  cfg.Summarizer.Provider,
		APIKey:    cfg.Summarizer.APIKey,
		Model:     cfg.Summarizer.Model,
		BaseURL:   cfg.Summarizer.BaseURL,
		MaxTokens: cfg.Summarizer.MaxTokens,
		Timeout:   cfg.Summarizer.Timeout,
	})
	if err != nil {
		logger.Error("failed to create summarizer", slog.Any("error", err))
		os.Exit(1)
	}

	newsSvc := newsUC.NewService(newsClient, newsUC.Catalog{
		Country:         catalog.Country,
		DefaultCategory: catalog.DefaultCategory,
		Sources:         catalog.Sources,
	})
	sumSvc := sumUC.NewService(articleScraper, model)

	breakers := []hhttp.Breaker{
		newsClient.CircuitBreaker(),
		articleScraper.CircuitBreaker(),
		model.CircuitBreaker(),
	}

	logger.Info("services initialized",
		slog.String("news_api", cfg.NewsAPI.BaseURL),
		slog.String("summarizer", model.Provider()),
		slog.String("scrape_strategy", articleScraper.Strategy()),
		slog.String("catalog_country", catalog.Country),
		slog.Int("catalog_categories", len(catalog.Categories)))

	mux := setupRoutes(cfg.Version, newsSvc, sumSvc, breakers)
	handler := applyMiddleware(logger, cfg, mux)

	return &ServerComponents{Handler: handler, Breakers: breakers}
}

func setupRoutes(version string, newsSvc *newsUC.Service, sumSvc *sumUC.Service, breakers []hhttp.Breaker) *http.ServeMux {
	mux := http.NewServeMux()

	hnews.Register(mux, newsSvc)
	hsum.Register(mux, sumSvc)

	mux.Handle("GET /health", &hhttp.HealthHandler{Breakers: breakers, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Breakers: breakers})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}

func applyMiddleware(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) http.Handler {
	corsConfig := middleware.NewCORSConfig(cfg.CORS.AllowedOrigins)
	corsConfig.Logger = logger

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", cfg.CORS.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	return hhttp.Chain(handler,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		middleware.CORS(corsConfig),
		hhttp.LimitRequestBody(maxRequestBody),
	)
}

func runServer(logger *slog.Logger, cfg *config.AppConfig, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 要約リクエストは記事取得とモデル呼び出しを直列に行う
	writeTimeout := cfg.Scraper.Timeout + cfg.Summarizer.Timeout + 15*time.Second

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr()),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}
