package internal

import "fmt"

// Strategy is one catalog entry. Symbols holds the instruments in
// catalog order; the first symbol absorbs rounding remainders, so the
// order is behaviorally visible and must stay stable.
type Strategy struct {
	Name    string
	Symbols []string
	// Weights are the default per-instrument weights shown for an
	// equal split. They always sum to 1.0.
	Weights map[string]float64
}

var strategies = map[string]Strategy{
	"Ethical Investing": {
		Name:    "Ethical Investing",
		Symbols: []string{"AAPL", "ADBE", "NSRGY"},
		Weights: map[string]float64{"AAPL": 0.34, "ADBE": 0.33, "NSRGY": 0.33},
	},
	"Growth Investing": {
		Name:    "Growth Investing",
		Symbols: []string{"AMZN", "TSLA", "GOOGL"},
		Weights: map[string]float64{"AMZN": 0.34, "TSLA": 0.33, "GOOGL": 0.33},
	},
	"Index Investing": {
		Name:    "Index Investing",
		Symbols: []string{"VTI", "IXUS", "ILTB"},
		Weights: map[string]float64{"VTI": 0.34, "IXUS": 0.33, "ILTB": 0.33},
	},
	"Quality Investing": {
		Name:    "Quality Investing",
		Symbols: []string{"MSFT", "JNJ", "PG"},
		Weights: map[string]float64{"MSFT": 0.34, "JNJ": 0.33, "PG": 0.33},
	},
	"Value Investing": {
		Name:    "Value Investing",
		Symbols: []string{"BRK-B", "KO", "XOM"},
		Weights: map[string]float64{"BRK-B": 0.34, "KO": 0.33, "XOM": 0.33},
	},
}

// MarketTickerSymbols is the fixed universe served by the market-ticker
// endpoint.
var MarketTickerSymbols = []string{
	"AAPL", "TSLA", "AMZN", "GOOGL", "MSFT", "NFLX", "NVDA", "META",
	"BRK-B", "V", "JNJ", "XOM", "BAC", "PG", "DIS", "CSCO", "PEP",
	"KO", "WMT", "COST", "MA", "HD", "ADBE", "CRM", "PYPL", "INTC",
	"QCOM", "T", "NKE", "MCD",
}

type UnknownStrategyError struct {
	Name string
}

func (e UnknownStrategyError) Error() string {
	return fmt.Sprintf("Unknown strategy: %s", e.Name)
}

// StrategyWeights looks up a catalog entry by name.
func StrategyWeights(name string) (Strategy, error) {
	strategy, ok := strategies[name]
	if !ok {
		return Strategy{}, UnknownStrategyError{Name: name}
	}
	return strategy, nil
}
