// Package logging はプロセス全体で使うslogロガーを設定します。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup はwに書き込むテキスト形式のslogハンドラーをデフォルトロガーとして設定します。
// レベルはLOG_LEVELから読み込み、未設定または不正な場合はdefを使用します。
func Setup(w io.Writer, def slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(os.Getenv("LOG_LEVEL"), def)}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel はdebug|info|warn|error（大文字小文字を区別しない）をslogのレベルに変換します。
func ParseLevel(s string, def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}
