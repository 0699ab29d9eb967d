package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vnstock_api/internal/feature/company/domain/entity"
	"vnstock_api/internal/shared/apperror"
	"vnstock_api/internal/shared/clock"
	"vnstock_api/internal/shared/nullable"
)

type mockFundamentalRepository struct {
	getFundamentalsFn func(ctx context.Context, symbol string) ([]entity.FundamentalRow, error)
	gotSymbol         string
}

func (m *mockFundamentalRepository) GetFundamentals(ctx context.Context, symbol string) ([]entity.FundamentalRow, error) {
	m.gotSymbol = symbol
	if m.getFundamentalsFn != nil {
		return m.getFundamentalsFn(ctx, symbol)
	}
	return nil, nil
}

func TestNewCompanyUsecase(t *testing.T) {
	t.Parallel()

	repo := &mockFundamentalRepository{}
	uc := NewCompanyUsecase(repo, clock.Fixed(time.Time{}))

	assert.NotNil(t, uc)
	assert.Same(t, repo, uc.repo)
}

func TestCompanyUsecase_GetCompanyInfo(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	errProvider := errors.New("ratio endpoint down")

	tests := []struct {
		name    string
		rows    []entity.FundamentalRow
		repoErr error
		want    entity.CompanyInfo
		wantErr error
	}{
		{
			name: "success: most recent row is used",
			rows: []entity.FundamentalRow{
				{MarketCap: nullable.Of(1.0), PE: nullable.Of(1.0), PB: nullable.Of(1.0), EPS: nullable.Of(1.0), ROE: nullable.Of(1.0)},
				{MarketCap: nullable.Of(450000.0), PE: nullable.Of(15.2), PB: nullable.Of(2.8), EPS: nullable.Of(5600.0), ROE: nullable.Of(0.21)},
			},
			want: entity.CompanyInfo{MarketCap: 450000, PERatio: 15.2, PBRatio: 2.8, EPS: 5600, ROE: 0.21},
		},
		{
			name: "success: missing ratios are coalesced independently",
			rows: []entity.FundamentalRow{
				{PE: nullable.Of(9.5), ROE: nullable.Of(0.12)},
			},
			want: entity.CompanyInfo{PERatio: 9.5, ROE: 0.12},
		},
		{
			name:    "error: empty dataset is not found",
			rows:    []entity.FundamentalRow{},
			wantErr: apperror.ErrNotFound,
		},
		{
			name:    "error: provider failure is propagated",
			repoErr: errProvider,
			wantErr: errProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockFundamentalRepository{
				getFundamentalsFn: func(ctx context.Context, symbol string) ([]entity.FundamentalRow, error) {
					return tt.rows, tt.repoErr
				},
			}
			uc := NewCompanyUsecase(repo, clock.Fixed(now))

			profile, err := uc.GetCompanyInfo(context.Background(), "vnm")

			assert.Equal(t, "VNM", repo.gotSymbol)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "VNM", profile.Symbol)
			assert.Equal(t, tt.want, profile.Info)
			assert.True(t, now.Equal(profile.GeneratedAt))
		})
	}
}
