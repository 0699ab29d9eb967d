// Package usecase は市場ボード（マーケット概況）のビジネスロジックを実装します。
package usecase

import (
	"context"

	"vnstock_api/internal/feature/market/domain/entity"
	"vnstock_api/internal/shared/apperror"
	"vnstock_api/internal/shared/clock"
	"vnstock_api/internal/shared/nullable"
)

// TopRows はレスポンスに含めるボードの行数上限です。
const TopRows = 20

// BoardRepository はプロバイダーの市場ボードを抽象化します。
type BoardRepository interface {
	GetBoard(ctx context.Context) ([]entity.BoardRow, error)
}

type marketUsecase struct {
	repo  BoardRepository
	clock clock.Clock
}

// NewMarketUsecase はmarketUsecaseの新しいインスタンスを生成します。
func NewMarketUsecase(repo BoardRepository, clk clock.Clock) *marketUsecase {
	return &marketUsecase{repo: repo, clock: clk}
}

// GetMarketOverview はボードの先頭TopRows行を、欠損値を0に置き換えて返します。
// 並び順はプロバイダーのものをそのまま使います。
func (u *marketUsecase) GetMarketOverview(ctx context.Context) (entity.MarketOverview, error) {
	rows, err := u.repo.GetBoard(ctx)
	if err != nil {
		return entity.MarketOverview{}, err
	}
	if len(rows) == 0 {
		return entity.MarketOverview{}, apperror.ErrNotFound
	}

	if len(rows) > TopRows {
		rows = rows[:TopRows]
	}
	out := make([]entity.MarketRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.MarketRow{
			Symbol:        r.Symbol,
			Price:         nullable.OrZero(r.Price),
			Change:        nullable.OrZero(r.Change),
			ChangePercent: nullable.OrZero(r.ChangePercent),
			Volume:        nullable.OrZero(r.Volume),
		})
	}

	return entity.MarketOverview{Rows: out, GeneratedAt: u.clock.Now()}, nil
}
