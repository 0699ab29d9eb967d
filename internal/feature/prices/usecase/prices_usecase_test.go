package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vnstock_api/internal/feature/prices/domain/entity"
	"vnstock_api/internal/feature/prices/usecase"
	"vnstock_api/internal/shared/apperror"
	"vnstock_api/internal/shared/clock"
)

// ErrProvider はモックと期待値の間で共有されるセンチネルエラーです。
var ErrProvider = errors.New("provider unavailable")

// mockPriceRepository はPriceRepositoryのモック実装です。
type mockPriceRepository struct {
	GetPriceHistoryFunc  func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error)
	GetPriceHistoryCalls int
	gotSymbol            string
	gotStart, gotEnd     time.Time
}

func (m *mockPriceRepository) GetPriceHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
	m.GetPriceHistoryCalls++
	m.gotSymbol, m.gotStart, m.gotEnd = symbol, start, end
	if m.GetPriceHistoryFunc != nil {
		return m.GetPriceHistoryFunc(ctx, symbol, start, end)
	}
	return nil, errors.New("GetPriceHistoryFunc is not implemented")
}

var frozenNow = time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func intp(n int) *int { return &n }

func TestResolveRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     usecase.HistoryQuery
		wantStart string
		wantEnd   string
	}{
		{
			name:      "days without dates",
			query:     usecase.HistoryQuery{Days: intp(7)},
			wantStart: "2024-06-03",
			wantEnd:   "2024-06-10",
		},
		{
			name:      "default days when absent",
			query:     usecase.HistoryQuery{},
			wantStart: "2024-05-11",
			wantEnd:   "2024-06-10",
		},
		{
			name:      "zero days is an empty window ending now",
			query:     usecase.HistoryQuery{Days: intp(0)},
			wantStart: "2024-06-10",
			wantEnd:   "2024-06-10",
		},
		{
			name:      "negative days are used as given",
			query:     usecase.HistoryQuery{Days: intp(-3)},
			wantStart: "2024-06-13",
			wantEnd:   "2024-06-10",
		},
		{
			name:      "explicit range wins over days",
			query:     usecase.HistoryQuery{Days: intp(7), StartDate: ptr(day(2024, 1, 2)), EndDate: ptr(day(2024, 2, 1))},
			wantStart: "2024-01-02",
			wantEnd:   "2024-02-01",
		},
		{
			name:      "only start date is ignored",
			query:     usecase.HistoryQuery{Days: intp(7), StartDate: ptr(day(2024, 1, 2))},
			wantStart: "2024-06-03",
			wantEnd:   "2024-06-10",
		},
		{
			name:      "only end date is ignored",
			query:     usecase.HistoryQuery{Days: intp(7), EndDate: ptr(day(2024, 2, 1))},
			wantStart: "2024-06-03",
			wantEnd:   "2024-06-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := usecase.ResolveRange(frozenNow, tt.query)
			assert.Equal(t, tt.wantStart, start.Format(clock.DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(clock.DateLayout))
		})
	}
}

func TestQuoteWindow(t *testing.T) {
	t.Parallel()

	start, end := usecase.QuoteWindow(frozenNow)
	assert.Equal(t, "2023-06-10", start.Format(clock.DateLayout))
	assert.Equal(t, "2024-06-10", end.Format(clock.DateLayout))
}

func TestPricesUsecase_GetQuote(t *testing.T) {
	bars := []entity.Bar{
		{Date: day(2024, 6, 6), Open: 90, High: 92, Low: 89, Close: 91, Volume: 1000},
		{Date: day(2024, 6, 7), Open: 91, High: 95, Low: 90.5, Close: 94.2, Volume: 2500},
	}

	testCases := []struct {
		name        string
		symbol      string
		mockFunc    func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error)
		expected    entity.Quote
		expectedErr error
	}{
		{
			name:   "success: last row becomes the quote",
			symbol: "vcb",
			mockFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
				return bars, nil
			},
			expected: entity.Quote{Symbol: "VCB", Bar: bars[1]},
		},
		{
			name:   "error: empty series is not found",
			symbol: "ZZZ",
			mockFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
				return []entity.Bar{}, nil
			},
			expectedErr: apperror.ErrNotFound,
		},
		{
			name:   "error: provider failure is propagated",
			symbol: "FPT",
			mockFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
				return nil, ErrProvider
			},
			expectedErr: ErrProvider,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockPriceRepository{GetPriceHistoryFunc: tc.mockFunc}
			uc := usecase.NewPricesUsecase(repo, clock.Fixed(frozenNow))

			quote, err := uc.GetQuote(context.Background(), tc.symbol)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, quote)
			}
			assert.Equal(t, 1, repo.GetPriceHistoryCalls)
		})
	}
}

func TestPricesUsecase_GetQuote_RequestsTrailingYear(t *testing.T) {
	repo := &mockPriceRepository{
		GetPriceHistoryFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
			return []entity.Bar{{Date: day(2024, 6, 7)}}, nil
		},
	}
	uc := usecase.NewPricesUsecase(repo, clock.Fixed(frozenNow))

	_, err := uc.GetQuote(context.Background(), "hpg")
	require.NoError(t, err)

	assert.Equal(t, "HPG", repo.gotSymbol)
	assert.Equal(t, "2023-06-10", repo.gotStart.Format(clock.DateLayout))
	assert.Equal(t, "2024-06-10", repo.gotEnd.Format(clock.DateLayout))
}

func TestPricesUsecase_GetHistory(t *testing.T) {
	bars := []entity.Bar{
		{Date: day(2024, 6, 3), Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10},
		{Date: day(2024, 6, 4), Open: 1.5, High: 2.5, Low: 1, Close: 2, Volume: 20},
		{Date: day(2024, 6, 5), Open: 2, High: 3, Low: 1.5, Close: 2.5, Volume: 30},
	}

	t.Run("success: preserves provider order and upper-cases symbol", func(t *testing.T) {
		repo := &mockPriceRepository{
			GetPriceHistoryFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
				return bars, nil
			},
		}
		uc := usecase.NewPricesUsecase(repo, clock.Fixed(frozenNow))

		history, err := uc.GetHistory(context.Background(), "abc", usecase.HistoryQuery{Days: intp(7)})
		require.NoError(t, err)

		assert.Equal(t, "ABC", history.Symbol)
		assert.Equal(t, bars, history.Bars)
		assert.Equal(t, "ABC", repo.gotSymbol)
		assert.Equal(t, "2024-06-03", repo.gotStart.Format(clock.DateLayout))
		assert.Equal(t, "2024-06-10", repo.gotEnd.Format(clock.DateLayout))
	})

	t.Run("success: explicit range is forwarded", func(t *testing.T) {
		repo := &mockPriceRepository{
			GetPriceHistoryFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
				return bars, nil
			},
		}
		uc := usecase.NewPricesUsecase(repo, clock.Fixed(frozenNow))

		q := usecase.HistoryQuery{StartDate: ptr(day(2024, 3, 1)), EndDate: ptr(day(2024, 3, 31))}
		_, err := uc.GetHistory(context.Background(), "ABC", q)
		require.NoError(t, err)

		assert.Equal(t, "2024-03-01", repo.gotStart.Format(clock.DateLayout))
		assert.Equal(t, "2024-03-31", repo.gotEnd.Format(clock.DateLayout))
	})

	t.Run("error: empty series is not found", func(t *testing.T) {
		repo := &mockPriceRepository{
			GetPriceHistoryFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
				return nil, nil
			},
		}
		uc := usecase.NewPricesUsecase(repo, clock.Fixed(frozenNow))

		_, err := uc.GetHistory(context.Background(), "ABC", usecase.HistoryQuery{})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("error: provider failure is propagated", func(t *testing.T) {
		repo := &mockPriceRepository{
			GetPriceHistoryFunc: func(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
				return nil, ErrProvider
			},
		}
		uc := usecase.NewPricesUsecase(repo, clock.Fixed(frozenNow))

		_, err := uc.GetHistory(context.Background(), "ABC", usecase.HistoryQuery{})
		assert.ErrorIs(t, err, ErrProvider)
	})
}
