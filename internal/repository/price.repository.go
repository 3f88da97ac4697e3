package repository

import (
	"context"
	"time"

	"stockportfolio/internal/domain"
	"stockportfolio/internal/logger"
	"stockportfolio/internal/util"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// PriceRepository supplies market data for one instrument at a time.
// A symbol the provider knows nothing about is an ordinary data
// condition, not an error: GetQuote returns a nil Price and GetHistory
// an empty history.
type PriceRepository interface {
	GetQuote(ctx context.Context, symbol string) (domain.PriceQuote, error)
	GetHistory(ctx context.Context, symbol string, days int) (domain.PriceHistory, error)
}

func NewYahooPriceRepository() PriceRepository {
	return yahooPriceRepositoryHandler{}
}

type yahooPriceRepositoryHandler struct{}

func (h yahooPriceRepositoryHandler) GetQuote(ctx context.Context, symbol string) (domain.PriceQuote, error) {
	q, err := quote.Get(symbol)
	if err != nil || q == nil {
		logger.FromContext(ctx).Warnf("no quote for %s: %v", symbol, err)
		return domain.PriceQuote{}, nil
	}

	price := util.Round2(q.RegularMarketPrice)
	return domain.PriceQuote{
		Price:  &price,
		Change: util.Round2(q.RegularMarketPrice - q.RegularMarketOpen),
	}, nil
}

func (h yahooPriceRepositoryHandler) GetHistory(ctx context.Context, symbol string, days int) (domain.PriceHistory, error) {
	// request roughly double the window in calendar days so weekends
	// and holidays still leave enough bars
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -(2*days + 2))
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	history := domain.PriceHistory{}
	for iter.Next() {
		bar := iter.Bar()
		history = append(history, domain.PricePoint{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC().Format(util.DateLayout),
			Price: util.FloatPointer(bar.Close.InexactFloat64()),
		})
	}
	if err := iter.Err(); err != nil {
		logger.FromContext(ctx).Warnf("no price history for %s: %v", symbol, err)
		return domain.PriceHistory{}, nil
	}

	if len(history) > days {
		history = history[len(history)-days:]
	}
	return history, nil
}
