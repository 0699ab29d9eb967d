package vnstock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	companyentity "vnstock_api/internal/feature/company/domain/entity"
	companyusecase "vnstock_api/internal/feature/company/usecase"
	marketentity "vnstock_api/internal/feature/market/domain/entity"
	marketusecase "vnstock_api/internal/feature/market/usecase"
	pricesentity "vnstock_api/internal/feature/prices/domain/entity"
	pricesusecase "vnstock_api/internal/feature/prices/usecase"
	"vnstock_api/internal/platform/externalapi/vnstock/dto"
	"vnstock_api/internal/shared/clock"
)

const (
	historyPath     = "/stock_historical_data"
	boardPath       = "/stock_ls_board"
	fundamentalPath = "/stock_fundamental_data"

	// maxErrorBody caps how much of a failed response is read for its message.
	maxErrorBody = 4 << 10
)

// VnstockMarket はvnstockブリッジから株価・ボード・財務指標を取得するリポジトリ実装です。
type VnstockMarket struct {
	cfg    Config
	client *http.Client
}

// VnstockMarketが各ユースケースのリポジトリを実装していることをコンパイル時に検証します。
var (
	_ pricesusecase.PriceRepository        = (*VnstockMarket)(nil)
	_ marketusecase.BoardRepository        = (*VnstockMarket)(nil)
	_ companyusecase.FundamentalRepository = (*VnstockMarket)(nil)
)

// NewVnstockMarket は指定された設定とHTTPクライアントでVnstockMarketの新しいインスタンスを生成します。
func NewVnstockMarket(cfg Config, client *http.Client) *VnstockMarket {
	return &VnstockMarket{cfg: cfg, client: client}
}

// GetPriceHistory は [start, end] の日足を取得します。
// OHLCVのいずれかが欠損している行はデータ不正としてエラーにします。
func (m *VnstockMarket) GetPriceHistory(ctx context.Context, symbol string, start, end time.Time) ([]pricesentity.Bar, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("start_date", start.Format(clock.DateLayout))
	q.Set("end_date", end.Format(clock.DateLayout))
	q.Set("resolution", "1D")
	q.Set("type", "stock")

	t, err := m.fetchTable(ctx, historyPath, q)
	if err != nil {
		return nil, err
	}

	bars := make([]pricesentity.Bar, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		var (
			b    pricesentity.Bar
			perr error
		)
		if b.Date, perr = t.Date(i); perr != nil {
			return nil, perr
		}
		if b.Open, perr = t.requireFloat(i, "open"); perr != nil {
			return nil, perr
		}
		if b.High, perr = t.requireFloat(i, "high"); perr != nil {
			return nil, perr
		}
		if b.Low, perr = t.requireFloat(i, "low"); perr != nil {
			return nil, perr
		}
		if b.Close, perr = t.requireFloat(i, "close"); perr != nil {
			return nil, perr
		}
		if b.Volume, perr = t.requireInt(i, "volume"); perr != nil {
			return nil, perr
		}
		bars = append(bars, b)
	}
	return bars, nil
}

// GetBoard は市場ボード全体を取得します。数値の欠損はnilのまま返します。
func (m *VnstockMarket) GetBoard(ctx context.Context) ([]marketentity.BoardRow, error) {
	t, err := m.fetchTable(ctx, boardPath, nil)
	if err != nil {
		return nil, err
	}

	rows := make([]marketentity.BoardRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		var (
			r    marketentity.BoardRow
			perr error
		)
		if r.Symbol, perr = t.String(i, "symbol"); perr != nil {
			return nil, perr
		}
		if r.Price, perr = t.Float(i, "price"); perr != nil {
			return nil, perr
		}
		if r.Change, perr = t.Float(i, "change"); perr != nil {
			return nil, perr
		}
		if r.ChangePercent, perr = t.Float(i, "change_percent"); perr != nil {
			return nil, perr
		}
		if r.Volume, perr = t.Int(i, "volume"); perr != nil {
			return nil, perr
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// GetFundamentals は銘柄の財務指標を期間の古い順に取得します。
func (m *VnstockMarket) GetFundamentals(ctx context.Context, symbol string) ([]companyentity.FundamentalRow, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	t, err := m.fetchTable(ctx, fundamentalPath, q)
	if err != nil {
		return nil, err
	}

	rows := make([]companyentity.FundamentalRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		var (
			r    companyentity.FundamentalRow
			perr error
		)
		if r.MarketCap, perr = t.Float(i, "market_cap"); perr != nil {
			return nil, perr
		}
		if r.PE, perr = t.Float(i, "pe"); perr != nil {
			return nil, perr
		}
		if r.PB, perr = t.Float(i, "pb"); perr != nil {
			return nil, perr
		}
		if r.EPS, perr = t.Float(i, "eps"); perr != nil {
			return nil, perr
		}
		if r.ROE, perr = t.Float(i, "roe"); perr != nil {
			return nil, perr
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// fetchTable はブリッジにGETリクエストを送り、splitテーブルをデコードします。
func (m *VnstockMarket) fetchTable(ctx context.Context, path string, q url.Values) (*table, error) {
	u := strings.TrimRight(m.cfg.BaseURL, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, statusError(res)
	}

	var body dto.SplitTable
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return newTable(body)
}

// statusError は失敗レスポンスからエラーメッセージを組み立てます。
func statusError(res *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

	msg := strings.TrimSpace(string(b))
	var body dto.ErrorBody
	if err := json.Unmarshal(b, &body); err == nil {
		switch {
		case body.Error != "":
			msg = body.Error
		case len(body.Detail) > 0:
			var detail string
			if err := json.Unmarshal(body.Detail, &detail); err == nil {
				msg = detail
			} else {
				msg = string(body.Detail)
			}
		}
	}

	if msg == "" {
		return fmt.Errorf("vnstock http %d", res.StatusCode)
	}
	return fmt.Errorf("vnstock http %d: %s", res.StatusCode, msg)
}
