package internal

import (
	"testing"

	"stockportfolio/internal/domain"
	"stockportfolio/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_BuildWeeklyTrend(t *testing.T) {
	fp := util.FloatPointer
	dates := []string{"2024-12-09", "2024-12-10"}

	t.Run("sums shares times price across strategies", func(t *testing.T) {
		results := []domain.StrategyResult{
			{
				Strategy: "Growth Investing",
				Portfolio: map[string]domain.PortfolioEntry{
					"AMZN": {Shares: 2, Dates: dates, Prices: []*float64{fp(10), fp(11)}},
				},
			},
			{
				Strategy: "Value Investing",
				Portfolio: map[string]domain.PortfolioEntry{
					"KO": {Shares: 3, Dates: dates, Prices: []*float64{fp(20), fp(21)}},
				},
			},
		}

		trend := BuildWeeklyTrend(results)

		require.Len(t, trend, 2)
		require.Equal(t, domain.WeeklyPoint{Day: "Dec 09", Value: 80}, trend[0])
		require.Equal(t, domain.WeeklyPoint{Day: "Dec 10", Value: 85}, trend[1])
	})

	t.Run("null and non-positive prices contribute nothing", func(t *testing.T) {
		results := []domain.StrategyResult{
			{
				Portfolio: map[string]domain.PortfolioEntry{
					"XOM": {Shares: 5, Dates: dates, Prices: []*float64{nil, fp(0)}},
				},
			},
		}

		trend := BuildWeeklyTrend(results)

		require.Len(t, trend, 2)
		require.Equal(t, 0.0, trend[0].Value)
		require.Equal(t, 0.0, trend[1].Value)
	})

	t.Run("no portfolio entries means no trend", func(t *testing.T) {
		require.Empty(t, BuildWeeklyTrend(nil))
		require.Empty(t, BuildWeeklyTrend([]domain.StrategyResult{{Portfolio: map[string]domain.PortfolioEntry{}}}))
	})

	t.Run("unparseable dates are kept verbatim", func(t *testing.T) {
		results := []domain.StrategyResult{
			{
				Portfolio: map[string]domain.PortfolioEntry{
					"PG": {Shares: 1, Dates: []string{"not-a-date"}, Prices: []*float64{fp(2)}},
				},
			},
		}

		trend := BuildWeeklyTrend(results)

		require.Len(t, trend, 1)
		require.Equal(t, domain.WeeklyPoint{Day: "not-a-date", Value: 2}, trend[0])
	})
}
