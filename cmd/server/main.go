package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/starke/backend/internal/config"
	"github.com/starke/backend/internal/handler"
	"github.com/starke/backend/internal/logging"
	"github.com/starke/backend/internal/repository"
	"github.com/starke/backend/internal/service"
	"github.com/starke/backend/pkg/auth"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		logging.Fatal("failed to initialize schema", "error", err)
	}

	var tokens auth.TokenStore
	if cfg.RedisURL != "" {
		redisTokens, err := auth.NewRedisTokenStore(ctx, cfg.RedisURL)
		if err != nil {
			logging.Fatal("failed to connect to redis", "error", err)
		}
		defer redisTokens.Close()
		tokens = redisTokens
	} else {
		slog.Warn("using in-memory token store; tokens are per-process and lost on restart")
		tokens = auth.NewMemoryTokenStore()
	}

	messageRepo := repository.NewPgMessageRepository(pool)
	budgetRepo := repository.NewPgBudgetRepository(pool)
	messageService := service.NewMessageService(messageRepo, cfg.StorageTimeout)
	budgetService := service.NewBudgetService(budgetRepo, cfg.StorageTimeout)
	authService := service.NewAuthService(tokens, cfg.AdminEmail, cfg.AdminPassword)

	messageHandler := handler.NewMessageHandler(messageService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	authHandler := handler.NewAuthHandler(authService)

	requireToken := auth.RequireToken(tokens)
	submitLimiter := handler.NewRateLimiter(cfg.SubmitRateLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)

	// Public submission endpoints (rate limited)
	mux.Handle("POST /api/messages", submitLimiter.Middleware(http.HandlerFunc(messageHandler.Submit)))
	mux.Handle("POST /api/budgets", submitLimiter.Middleware(http.HandlerFunc(budgetHandler.Submit)))

	// Admin listings (bearer token required)
	mux.Handle("GET /api/messages", requireToken(http.HandlerFunc(messageHandler.List)))
	mux.Handle("GET /api/budgets", requireToken(http.HandlerFunc(budgetHandler.List)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(handler.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
