// Package router はginエンジンを組み立て、全エンドポイントを登録します。
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vnstock_api/internal/api"
	"vnstock_api/internal/app/di"
	"vnstock_api/internal/platform/http/handler"
	"vnstock_api/internal/platform/http/middleware"
	"vnstock_api/internal/platform/http/response"
)

// server は各フィーチャーのハンドラーを束ねて api.ServerInterface を満たします。
type server struct {
	di.Handlers
}

var _ api.ServerInterface = server{}

func (s server) GetIndex(c *gin.Context) { handler.Index(c) }

func (s server) GetStockPrice(c *gin.Context, symbol api.Symbol) {
	s.Prices.GetStockPrice(c, symbol)
}

func (s server) GetStockHistory(c *gin.Context, symbol api.Symbol, params api.GetStockHistoryParams) {
	s.Prices.GetStockHistory(c, symbol, params)
}

func (s server) GetMarketOverview(c *gin.Context) { s.Market.GetMarketOverview(c) }

func (s server) GetCompanyInfo(c *gin.Context, symbol api.Symbol) {
	s.Company.GetCompanyInfo(c, symbol)
}

// Options は NewRouter の任意設定です。
type Options struct {
	// Logger はアクセスログの出力先です。nilならslog.Default()。
	Logger *slog.Logger
	// Registerer / Gatherer はHTTPメトリクスの登録先と /metrics の公開元です。
	// nilならPrometheusのデフォルトレジストリ。
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter はミドルウェアとルートを登録したginエンジンを返します。
func NewRouter(h di.Handlers, opts Options) *gin.Engine {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.NewMetrics(opts.Registerer).Handler(),
		gin.Recovery(),
	)

	// 導通確認用
	r.Match([]string{http.MethodGet, http.MethodHead, http.MethodOptions}, "/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))

	api.RegisterHandlersWithOptions(r, server{h}, api.GinServerOptions{
		ErrorHandler: response.BadRequest,
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not Found"})
	})

	return r
}
