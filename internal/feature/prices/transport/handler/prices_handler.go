// Package handler はpricesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"vnstock_api/internal/api"
	"vnstock_api/internal/feature/prices/domain/entity"
	"vnstock_api/internal/feature/prices/usecase"
	"vnstock_api/internal/platform/http/response"
)

const (
	quoteNotFoundMsg   = "No data found for symbol"
	historyNotFoundMsg = "No data found"
)

// PricesUsecase は株価取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PricesUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	GetHistory(ctx context.Context, symbol string, q usecase.HistoryQuery) (entity.History, error)
}

// PricesHandler は株価のHTTPリクエストを処理します。
type PricesHandler struct {
	uc PricesUsecase
}

// NewPricesHandler は指定されたusecaseでPricesHandlerの新しいインスタンスを生成します。
func NewPricesHandler(uc PricesUsecase) *PricesHandler {
	return &PricesHandler{uc: uc}
}

// GetStockPrice は銘柄の最新の日足を返します。
//
// エンドポイント例:
// GET /api/stock/:symbol
func (h *PricesHandler) GetStockPrice(c *gin.Context, symbol api.Symbol) {
	q, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		response.Error(c, err, quoteNotFoundMsg)
		return
	}

	c.JSON(http.StatusOK, api.QuoteResponse{
		Symbol: q.Symbol,
		Price:  q.Close,
		Open:   q.Open,
		High:   q.High,
		Low:    q.Low,
		Volume: q.Volume,
		Date:   toDate(q.Date),
	})
}

// GetStockHistory は期間内の日足を返します。
//
// エンドポイント例:
// GET /api/history/:symbol?days=30
// GET /api/history/:symbol?start_date=2024-01-01&end_date=2024-06-30
func (h *PricesHandler) GetStockHistory(c *gin.Context, symbol api.Symbol, params api.GetStockHistoryParams) {
	q := usecase.HistoryQuery{
		Days:      parseDays(params.Days),
		StartDate: dateParam(params.StartDate),
		EndDate:   dateParam(params.EndDate),
	}

	hist, err := h.uc.GetHistory(c.Request.Context(), symbol, q)
	if err != nil {
		response.Error(c, err, historyNotFoundMsg)
		return
	}

	out := make([]api.HistoryPoint, 0, len(hist.Bars))
	for _, b := range hist.Bars {
		out = append(out, api.HistoryPoint{
			Date:   toDate(b.Date),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}

	c.JSON(http.StatusOK, api.HistoryResponse{Symbol: hist.Symbol, Data: out})
}

// parseDays は days クエリを整数に変換します。
// 未指定・空・整数でない値はnil（デフォルト日数）として扱います。
func parseDays(raw *string) *int {
	if raw == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}
	return &n
}

// dateParam は日付クエリを time.Time に変換します。
// start_date= のように値が空の場合もバインド結果はゼロ値になるため、未指定として扱います。
func dateParam(d *openapi_types.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// toDate はプロバイダーの日付をカレンダー日付に切り詰めます。
func toDate(t time.Time) openapi_types.Date {
	y, m, d := t.Date()
	return openapi_types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}
