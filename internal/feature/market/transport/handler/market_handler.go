// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vnstock_api/internal/api"
	"vnstock_api/internal/feature/market/domain/entity"
	"vnstock_api/internal/platform/http/response"
	"vnstock_api/internal/shared/clock"
)

const marketNotFoundMsg = "No market data available"

// MarketUsecase はマーケット概況取得のユースケースインターフェースを定義します。
type MarketUsecase interface {
	GetMarketOverview(ctx context.Context) (entity.MarketOverview, error)
}

// MarketHandler はマーケット概況のHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetMarketOverview はボード先頭の銘柄一覧と生成時刻を返します。
//
// エンドポイント例:
// GET /api/market
func (h *MarketHandler) GetMarketOverview(c *gin.Context) {
	ov, err := h.uc.GetMarketOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err, marketNotFoundMsg)
		return
	}

	rows := make([]api.MarketRow, 0, len(ov.Rows))
	for _, r := range ov.Rows {
		rows = append(rows, api.MarketRow{
			Symbol:        r.Symbol,
			Price:         r.Price,
			Change:        r.Change,
			ChangePercent: r.ChangePercent,
			Volume:        r.Volume,
		})
	}

	c.JSON(http.StatusOK, api.MarketOverviewResponse{
		MarketData: rows,
		Timestamp:  ov.GeneratedAt.Format(clock.TimestampLayout),
	})
}
