// Package usecase implements the business logic for company fundamentals.
package usecase

import (
	"context"
	"strings"

	"vnstock_api/internal/feature/company/domain/entity"
	"vnstock_api/internal/shared/apperror"
	"vnstock_api/internal/shared/clock"
	"vnstock_api/internal/shared/nullable"
)

// FundamentalRepository abstracts the provider's ratio dataset.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FundamentalRepository interface {
	// GetFundamentals returns the ratio rows of symbol, oldest first.
	GetFundamentals(ctx context.Context, symbol string) ([]entity.FundamentalRow, error)
}

// CompanyUsecase provides business logic for company lookups.
type CompanyUsecase struct {
	repo  FundamentalRepository
	clock clock.Clock
}

// NewCompanyUsecase creates a new CompanyUsecase.
func NewCompanyUsecase(repo FundamentalRepository, clk clock.Clock) *CompanyUsecase {
	return &CompanyUsecase{repo: repo, clock: clk}
}

// GetCompanyInfo returns the ratios of the most recent period of symbol.
// Each ratio missing from that period is reported as 0.
func (u *CompanyUsecase) GetCompanyInfo(ctx context.Context, symbol string) (entity.CompanyProfile, error) {
	symbol = strings.ToUpper(symbol)

	rows, err := u.repo.GetFundamentals(ctx, symbol)
	if err != nil {
		return entity.CompanyProfile{}, err
	}
	if len(rows) == 0 {
		return entity.CompanyProfile{}, apperror.ErrNotFound
	}

	latest := rows[len(rows)-1]
	return entity.CompanyProfile{
		Symbol: symbol,
		Info: entity.CompanyInfo{
			MarketCap: nullable.OrZero(latest.MarketCap),
			PERatio:   nullable.OrZero(latest.PE),
			PBRatio:   nullable.OrZero(latest.PB),
			EPS:       nullable.OrZero(latest.EPS),
			ROE:       nullable.OrZero(latest.ROE),
		},
		GeneratedAt: u.clock.Now(),
	}, nil
}
