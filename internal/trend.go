package internal

import (
	"sort"
	"time"

	"stockportfolio/internal/domain"
	"stockportfolio/internal/util"
)

// TrendWindowDays is the size of the trailing trend window.
const TrendWindowDays = 5

// ReconcileTrends aligns raw per-instrument histories of unequal length
// and coverage onto one shared date axis, filling gaps so the series
// can be summed into a single portfolio curve.
//
// The axis is the chronologically last five distinct dates seen across
// all histories, oldest first. If no history has any dates at all, the
// axis falls back to the five calendar days ending at now.
//
// Gaps are filled per instrument in two passes: back-fill (copy a
// slot's originally non-nil immediate successor into it, scanning
// right to left), then forward-fill (copy the immediate predecessor,
// scanning left to right). A single missing value therefore adopts its
// nearest later value when one exists, else its nearest earlier value.
// An all-nil series stays all-nil.
func ReconcileTrends(histories map[string]domain.PriceHistory, now time.Time) map[string]domain.TrendSeries {
	dateSet := map[string]struct{}{}
	for _, history := range histories {
		for _, point := range history {
			dateSet[point.Date] = struct{}{}
		}
	}

	var unified []string
	if len(dateSet) > 0 {
		all := make([]string, 0, len(dateSet))
		for date := range dateSet {
			all = append(all, date)
		}
		sort.Strings(all)
		if len(all) > TrendWindowDays {
			all = all[len(all)-TrendWindowDays:]
		}
		unified = all
	} else {
		unified = make([]string, 0, TrendWindowDays)
		for i := TrendWindowDays - 1; i >= 0; i-- {
			unified = append(unified, now.AddDate(0, 0, -i).Format(util.DateLayout))
		}
	}

	trends := make(map[string]domain.TrendSeries, len(histories))
	for symbol, history := range histories {
		priceMap := make(map[string]float64, len(history))
		for _, point := range history {
			if point.Price != nil {
				priceMap[point.Date] = *point.Price
			}
		}

		aligned := make([]*float64, len(unified))
		for i, date := range unified {
			if price, ok := priceMap[date]; ok {
				aligned[i] = util.FloatPointer(price)
			}
		}

		// back-fill: prefer look-ahead continuity over stale data.
		// Fills are decided against a snapshot, so a slot filled in
		// this pass never seeds the slot before it.
		snapshot := make([]*float64, len(aligned))
		copy(snapshot, aligned)
		for i := len(aligned) - 2; i >= 0; i-- {
			if aligned[i] == nil && snapshot[i+1] != nil {
				aligned[i] = util.FloatPointer(*snapshot[i+1])
			}
		}
		// forward-fill whatever remains
		for i := 1; i < len(aligned); i++ {
			if aligned[i] == nil && aligned[i-1] != nil {
				aligned[i] = util.FloatPointer(*aligned[i-1])
			}
		}

		trends[symbol] = domain.TrendSeries{Dates: unified, Prices: aligned}
	}

	return trends
}
