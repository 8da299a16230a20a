package router

import (
	"github.com/gin-gonic/gin"

	"quote_bridge/internal/api"
	quotehandler "quote_bridge/internal/feature/quote/transport/handler"
	"quote_bridge/internal/platform/http/handler"
)

// server は各フィーチャーのハンドラーをまとめ、生成済みのapi.ServerInterfaceを満たします。
type server struct {
	health gin.HandlerFunc
	quote  *quotehandler.QuoteHandler
}

var _ api.ServerInterface = (*server)(nil)

func (s *server) HealthCheck(c *gin.Context) { s.health(c) }

func (s *server) GetQuote(c *gin.Context, symbol string) { s.quote.GetQuote(c, symbol) }

// NewRouter はヘルスチェックと株価取得のルートを登録したginエンジンを返します。
// GETのルートはapi/openapi.yamlから生成されたRegisterHandlersWithOptionsで登録します。
func NewRouter(quote *quotehandler.QuoteHandler, upstream string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	srv := &server{health: handler.NewHealth(upstream), quote: quote}
	api.RegisterHandlersWithOptions(r, srv, api.GinServerOptions{
		// パラメータのバインドに失敗した場合もエラーレスポンスの形式を揃える
		ErrorHandler: func(c *gin.Context, err error, status int) {
			c.JSON(status, api.ErrorResponse{Error: err.Error()})
		},
	})

	// 導通確認用（HEAD/OPTIONSはOpenAPIの対象外）
	r.HEAD("/healthz", srv.health)
	r.OPTIONS("/healthz", srv.health)

	return r
}
