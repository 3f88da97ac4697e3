package repository

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"stockportfolio/internal/domain"
	"stockportfolio/internal/util"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartRepository turns one instrument's reconciled trend into an
// opaque serialized chart payload. Returns nil (no error) when the
// series has fewer than two usable points.
type ChartRepository interface {
	Render(symbol string, trend domain.TrendSeries) (*string, error)
}

func NewChartRepository() ChartRepository {
	return chartRepositoryHandler{}
}

type chartRepositoryHandler struct{}

func (h chartRepositoryHandler) Render(symbol string, trend domain.TrendSeries) (*string, error) {
	xValues := []time.Time{}
	yValues := []float64{}
	for i, price := range trend.Prices {
		if price == nil || i >= len(trend.Dates) {
			continue
		}
		date, err := time.Parse(util.DateLayout, trend.Dates[i])
		if err != nil {
			continue
		}
		xValues = append(xValues, date)
		yValues = append(yValues, *price)
	}
	if len(xValues) < 2 {
		return nil, nil
	}

	graph := gochart.Chart{
		Title:  fmt.Sprintf("Weekly Trend for %s", symbol),
		Width:  600,
		Height: 250,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name: fmt.Sprintf("%s Trend", symbol),
				Style: gochart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
					DotWidth:    3,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart for %s: %w", symbol, err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return &encoded, nil
}
