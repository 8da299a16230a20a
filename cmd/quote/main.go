package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"quote_bridge/internal/app/di"
	"quote_bridge/internal/feature/quote/transport/cli"
	"quote_bridge/internal/platform/externalapi/yahoo"
	"quote_bridge/internal/platform/logging"
)

func main() {
	// .envを読み込む（存在しなくてもよい）
	envErr := godotenv.Load(".env")

	// 標準出力はJSON専用のため、ログは標準エラーへ
	logging.Setup(os.Stderr, slog.LevelWarn)
	if envErr != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	uc := di.NewQuoteUsecase(yahoo.LoadConfig())
	code := cli.NewRunner(uc).Run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}
