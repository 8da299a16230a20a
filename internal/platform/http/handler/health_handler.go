// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_bridge/internal/api"
)

// NewHealth は /healthz エンドポイントのハンドラーを生成します。
// 上流へのリクエストは行わず、プロセスの生存と接続先のみを返します。
func NewHealth(upstream string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Upstream: upstream})
		}
	}
}
