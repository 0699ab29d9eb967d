// Package usecase は株価（最新値・履歴）取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"vnstock_api/internal/feature/prices/domain/entity"
	"vnstock_api/internal/shared/apperror"
	"vnstock_api/internal/shared/clock"
)

const (
	// DefaultHistoryDays は日付範囲が指定されない場合の遡り日数です。
	DefaultHistoryDays = 30
)

// PriceRepository は外部プロバイダーの日足時系列を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PriceRepository interface {
	// GetPriceHistory は [start, end] の日足を日付昇順で返します。
	GetPriceHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error)
}

// HistoryQuery は履歴取得のリクエストパラメータです。
// StartDate と EndDate の両方が指定された場合のみ Days は無視されます。
// Days が nil の場合は DefaultHistoryDays を使います。0や負数はそのまま使います。
type HistoryQuery struct {
	Days      *int
	StartDate *time.Time
	EndDate   *time.Time
}

// pricesUsecase は株価取得のユースケースです。
type pricesUsecase struct {
	repo  PriceRepository
	clock clock.Clock
}

// NewPricesUsecase はpricesUsecaseの新しいインスタンスを生成します。
func NewPricesUsecase(repo PriceRepository, clk clock.Clock) *pricesUsecase {
	return &pricesUsecase{repo: repo, clock: clk}
}

// QuoteWindow は最新値の検索に使う期間（現在から遡って1年）を返します。
func QuoteWindow(now time.Time) (start, end time.Time) {
	return now.AddDate(-1, 0, 0), now
}

// ResolveRange はHistoryQueryから実際にプロバイダーへ渡す期間を決定します。
// どちらかの日付が欠けている場合は [now - days, now] を使います。
func ResolveRange(now time.Time, q HistoryQuery) (start, end time.Time) {
	if q.StartDate != nil && q.EndDate != nil {
		return *q.StartDate, *q.EndDate
	}
	days := DefaultHistoryDays
	if q.Days != nil {
		days = *q.Days
	}
	return now.AddDate(0, 0, -days), now
}

// GetQuote は直近1年の日足を取得し、最後の行を最新値として返します。
func (u *pricesUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol = strings.ToUpper(symbol)
	start, end := QuoteWindow(u.clock.Now())

	bars, err := u.repo.GetPriceHistory(ctx, symbol, start, end)
	if err != nil {
		return entity.Quote{}, err
	}
	if len(bars) == 0 {
		return entity.Quote{}, apperror.ErrNotFound
	}

	return entity.Quote{Symbol: symbol, Bar: bars[len(bars)-1]}, nil
}

// GetHistory は指定期間の日足をプロバイダーの並び順のまま返します。
func (u *pricesUsecase) GetHistory(ctx context.Context, symbol string, q HistoryQuery) (entity.History, error) {
	symbol = strings.ToUpper(symbol)
	start, end := ResolveRange(u.clock.Now(), q)

	bars, err := u.repo.GetPriceHistory(ctx, symbol, start, end)
	if err != nil {
		return entity.History{}, err
	}
	if len(bars) == 0 {
		return entity.History{}, apperror.ErrNotFound
	}

	return entity.History{Symbol: symbol, Bars: bars}, nil
}
