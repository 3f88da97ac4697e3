package repository

import (
	"encoding/base64"
	"testing"

	"stockportfolio/internal/domain"
	"stockportfolio/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_Render(t *testing.T) {
	fp := util.FloatPointer
	dates := []string{"2025-08-25", "2025-08-26", "2025-08-27", "2025-08-28", "2025-08-29"}

	t.Run("renders a base64 png for a full series", func(t *testing.T) {
		graph, err := NewChartRepository().Render("MSFT", domain.TrendSeries{
			Dates:  dates,
			Prices: []*float64{fp(400), fp(402.5), fp(399), fp(405), fp(410)},
		})
		require.NoError(t, err)
		require.NotNil(t, graph)

		decoded, err := base64.StdEncoding.DecodeString(*graph)
		require.NoError(t, err)
		require.Equal(t, []byte("PNG"), decoded[1:4])
	})

	t.Run("nil when the series is all null", func(t *testing.T) {
		graph, err := NewChartRepository().Render("AMZN", domain.TrendSeries{
			Dates:  dates,
			Prices: make([]*float64, 5),
		})
		require.NoError(t, err)
		require.Nil(t, graph)
	})

	t.Run("nil with a single usable point", func(t *testing.T) {
		graph, err := NewChartRepository().Render("KO", domain.TrendSeries{
			Dates:  dates[:1],
			Prices: []*float64{fp(60)},
		})
		require.NoError(t, err)
		require.Nil(t, graph)
	})
}
