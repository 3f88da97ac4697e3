package domain

// PriceQuote is the latest market snapshot for one instrument. Price is
// nil when the data provider has nothing for the symbol; Change stays 0
// in that case.
type PriceQuote struct {
	Price  *float64 `json:"price"`
	Change float64  `json:"change"`
}

// PricePoint is one day of raw history. Price is nil on days the
// provider returned no data.
type PricePoint struct {
	Date  string
	Price *float64
}

// PriceHistory is an instrument's raw trailing price window, oldest
// first. It may be shorter than the requested window, or empty.
type PriceHistory []PricePoint

// TrendSeries is one instrument's history projected onto the unified
// date axis. Dates and Prices always have equal length; every
// instrument in a single response shares the same axis.
type TrendSeries struct {
	Dates  []string   `json:"dates"`
	Prices []*float64 `json:"prices"`
}

type PortfolioEntry struct {
	Allocation           float64    `json:"allocation"`
	AllocationPercentage float64    `json:"allocation_percentage"`
	Price                *float64   `json:"price"`
	Shares               float64    `json:"shares"`
	Graph                *string    `json:"graph"`
	Dates                []string   `json:"dates"`
	Prices               []*float64 `json:"prices"`
	Change               float64    `json:"change"`
	Volatility           *float64   `json:"volatility,omitempty"`
}

type StrategyResult struct {
	Strategy   string                    `json:"strategy"`
	Portfolio  map[string]PortfolioEntry `json:"portfolio"`
	TotalValue float64                   `json:"total_value"`
}

// WeeklyPoint is one point of the aggregate portfolio-value curve. Day
// is the short display form of the trading date, e.g. "Dec 09".
type WeeklyPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}
