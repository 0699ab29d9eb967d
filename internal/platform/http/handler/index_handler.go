package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vnstock_api/internal/api"
)

// IndexMessage は / が返す稼働メッセージです。
const IndexMessage = "VNStock API is running!"

// indexResponse は静的なので起動時に一度だけ組み立てます。
var indexResponse = api.IndexResponse{
	Message: IndexMessage,
	Endpoints: api.Endpoints{
		StockPrice:     "/api/stock/<symbol>",
		StockHistory:   "/api/history/<symbol>",
		MarketOverview: "/api/market",
		CompanyInfo:    "/api/company/<symbol>",
	},
}

// Index は GET / を処理し、利用可能なエンドポイントの一覧を返します。
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, indexResponse)
}
