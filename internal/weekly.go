package internal

import (
	"time"

	"stockportfolio/internal/domain"
	"stockportfolio/internal/util"
)

const displayDateLayout = "Jan 02"

// BuildWeeklyTrend sums shares*price across every instrument of every
// strategy onto the unified date axis. All entries in a single response
// share the axis by construction, so it is taken from the first entry
// found. Returns an empty slice when no strategy produced any entries.
func BuildWeeklyTrend(results []domain.StrategyResult) []domain.WeeklyPoint {
	var unified []string
	for _, result := range results {
		for _, entry := range result.Portfolio {
			unified = entry.Dates
			break
		}
		if unified != nil {
			break
		}
	}
	if len(unified) == 0 {
		return []domain.WeeklyPoint{}
	}

	values := make([]float64, len(unified))
	for _, result := range results {
		for _, entry := range result.Portfolio {
			for i, price := range entry.Prices {
				if i >= len(values) {
					break
				}
				if price != nil && *price > 0 {
					values[i] += entry.Shares * *price
				}
			}
		}
	}

	points := make([]domain.WeeklyPoint, len(unified))
	for i, date := range unified {
		day := date
		if parsed, err := time.Parse(util.DateLayout, date); err == nil {
			day = parsed.Format(displayDateLayout)
		}
		points[i] = domain.WeeklyPoint{Day: day, Value: util.Round2(values[i])}
	}
	return points
}
