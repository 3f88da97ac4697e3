package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stockportfolio/internal"
	"stockportfolio/internal/domain"
	"stockportfolio/internal/logger"
	"stockportfolio/internal/repository"
	"stockportfolio/internal/util"

	"github.com/montanaflynn/stats"
)

// PortfolioHandler computes a simulated portfolio for one request.
// Everything it builds is request-scoped; nothing persists.
type PortfolioHandler struct {
	PriceRepository repository.PriceRepository
	ChartRepository repository.ChartRepository
	Rand            internal.Rand

	// Now is overridable for tests of the calendar-day axis fallback.
	Now func() time.Time
}

type ComputePortfolioInput struct {
	Investment    float64
	Strategies    []string
	SplitEqually  bool
	SplitStrategy bool
}

type ComputePortfolioResponse struct {
	Results           []domain.StrategyResult
	OverallTotalValue float64
	WeeklyTrend       []domain.WeeklyPoint
}

func (h PortfolioHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

// ComputePortfolio splits the investment across the requested
// strategies, values each strategy's instruments against current market
// data, and aggregates the weekly portfolio curve.
func (h PortfolioHandler) ComputePortfolio(ctx context.Context, in ComputePortfolioInput) (*ComputePortfolioResponse, error) {
	strategyWeights := internal.SplitWeights(in.Strategies, !in.SplitStrategy, h.Rand)
	allocationPlan := internal.SplitAmount(in.Investment, in.Strategies, strategyWeights)

	results := []domain.StrategyResult{}
	overallTotal := 0.0
	for _, name := range in.Strategies {
		strategy, err := internal.StrategyWeights(name)
		if err != nil {
			return nil, err
		}

		portfolio, totalValue, err := h.computeStrategyPortfolio(ctx, allocationPlan[name], strategy, in.SplitEqually)
		if err != nil {
			return nil, fmt.Errorf("failed to compute portfolio for %s: %w", name, err)
		}

		results = append(results, domain.StrategyResult{
			Strategy:   name,
			Portfolio:  portfolio,
			TotalValue: totalValue,
		})
		overallTotal += totalValue
	}

	return &ComputePortfolioResponse{
		Results:           results,
		OverallTotalValue: util.Round2(overallTotal),
		WeeklyTrend:       internal.BuildWeeklyTrend(results),
	}, nil
}

func (h PortfolioHandler) computeStrategyPortfolio(
	ctx context.Context,
	investment float64,
	strategy internal.Strategy,
	splitEqually bool,
) (map[string]domain.PortfolioEntry, float64, error) {
	// allocations derive from the raw weights; the display weights are
	// rounded separately, so percentage times investment can differ
	// from the allocation by a cent
	rawWeights := internal.SplitWeights(strategy.Symbols, !splitEqually, h.Rand)
	displayWeights := internal.RoundWeights(strategy.Symbols, rawWeights)
	allocations := internal.SplitAmount(investment, strategy.Symbols, rawWeights)

	quotes, histories := h.fetchMarketData(ctx, strategy.Symbols)
	trends := internal.ReconcileTrends(histories, h.now())

	portfolio := make(map[string]domain.PortfolioEntry, len(strategy.Symbols))
	totalValue := 0.0
	for _, symbol := range strategy.Symbols {
		trend := trends[symbol]
		entry := domain.PortfolioEntry{
			Allocation:           allocations[symbol],
			AllocationPercentage: displayWeights[symbol],
			Dates:                trend.Dates,
			Prices:               trend.Prices,
			Change:               util.Round2(quotes[symbol].Change),
			Volatility:           trendVolatility(trend.Prices),
		}

		quotedPrice := quotes[symbol].Price
		if quotedPrice == nil {
			// no current price: zero shares, no chart, but the filled
			// trend still ships for charting
			portfolio[symbol] = entry
			continue
		}

		price := util.Round2(*quotedPrice)
		entry.Price = &price
		entry.Shares = util.Round2(entry.Allocation / price)

		graph, err := h.ChartRepository.Render(symbol, trend)
		if err != nil {
			return nil, 0, err
		}
		entry.Graph = graph

		// the strategy total counts the allocation, not shares*price,
		// so the displayed total matches the requested investment
		totalValue += entry.Allocation
		portfolio[symbol] = entry
	}

	return portfolio, util.Round2(totalValue), nil
}

// MarketTicker fetches current quotes for the fixed ticker universe,
// omitting any symbol without an available price.
func (h PortfolioHandler) MarketTicker(ctx context.Context) (map[string]domain.PriceQuote, error) {
	quotes := h.fetchQuotes(ctx, internal.MarketTickerSymbols)

	ticker := make(map[string]domain.PriceQuote, len(quotes))
	for symbol, q := range quotes {
		if q.Price != nil {
			ticker[symbol] = q
		}
	}
	return ticker, nil
}

// fetchQuotes is the quote-only fan-out used by the ticker, which has
// no need for histories.
func (h PortfolioHandler) fetchQuotes(ctx context.Context, symbols []string) map[string]domain.PriceQuote {
	type quoteResult struct {
		symbol string
		quote  domain.PriceQuote
	}
	resultCh := make(chan quoteResult, len(symbols))

	var wg sync.WaitGroup
	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()

			q, err := h.PriceRepository.GetQuote(ctx, symbol)
			if err != nil {
				logger.FromContext(ctx).Warnf("failed to fetch quote for %s: %v", symbol, err)
				q = domain.PriceQuote{}
			}
			resultCh <- quoteResult{symbol: symbol, quote: q}
		}(symbol)
	}
	wg.Wait()
	close(resultCh)

	quotes := make(map[string]domain.PriceQuote, len(symbols))
	for r := range resultCh {
		quotes[r.symbol] = r.quote
	}
	return quotes
}

type marketData struct {
	symbol  string
	quote   domain.PriceQuote
	history domain.PriceHistory
}

// fetchMarketData fans out one goroutine per instrument for the quote
// and history lookups and joins the results by symbol. Lookup failures
// degrade to "no data" so the rest of the portfolio computes normally.
func (h PortfolioHandler) fetchMarketData(ctx context.Context, symbols []string) (map[string]domain.PriceQuote, map[string]domain.PriceHistory) {
	resultCh := make(chan marketData, len(symbols))

	var wg sync.WaitGroup
	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()

			q, err := h.PriceRepository.GetQuote(ctx, symbol)
			if err != nil {
				logger.FromContext(ctx).Warnf("failed to fetch quote for %s: %v", symbol, err)
				q = domain.PriceQuote{}
			}
			history, err := h.PriceRepository.GetHistory(ctx, symbol, internal.TrendWindowDays)
			if err != nil {
				logger.FromContext(ctx).Warnf("failed to fetch history for %s: %v", symbol, err)
				history = domain.PriceHistory{}
			}

			resultCh <- marketData{symbol: symbol, quote: q, history: history}
		}(symbol)
	}
	wg.Wait()
	close(resultCh)

	quotes := make(map[string]domain.PriceQuote, len(symbols))
	histories := make(map[string]domain.PriceHistory, len(symbols))
	for md := range resultCh {
		quotes[md.symbol] = md.quote
		histories[md.symbol] = md.history
	}
	return quotes, histories
}

// trendVolatility is the sample standard deviation of the aligned
// prices, for display next to the trend. Nil with fewer than two priced
// points.
func trendVolatility(prices []*float64) *float64 {
	values := []float64{}
	for _, price := range prices {
		if price != nil {
			values = append(values, *price)
		}
	}
	if len(values) < 2 {
		return nil
	}
	stdev, err := stats.StandardDeviationSample(values)
	if err != nil {
		return nil
	}
	return util.FloatPointer(util.Round2(stdev))
}
