package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"quote_bridge/internal/app/di"
	"quote_bridge/internal/app/router"
	quotehandler "quote_bridge/internal/feature/quote/transport/handler"
	"quote_bridge/internal/platform/externalapi/yahoo"
	"quote_bridge/internal/platform/logging"
)

func main() {
	// .envを読み込む
	envErr := godotenv.Load(".env")
	logging.Setup(os.Stderr, slog.LevelInfo)
	if envErr != nil {
		slog.Info(".env not found; using system environment variables")
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := yahoo.LoadConfig()

	// Usecase
	quoteUC := di.NewQuoteUsecase(cfg)

	// Handler
	quoteH := quotehandler.NewQuoteHandler(quoteUC)

	// ルータ生成
	r := router.NewRouter(quoteH, cfg.BaseURL)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", addr, "upstream", cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
