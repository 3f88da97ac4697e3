package api

import (
	"errors"

	"stockportfolio/internal"
	"stockportfolio/internal/app"
	"stockportfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type PortfolioRequest struct {
	// Investment and Strategies are decoded loosely so a missing or
	// mistyped value hits its own validation check, in order, rather
	// than a bind failure.
	Investment    any   `json:"investment"`
	Strategies    any   `json:"strategies"`
	SplitEqually  *bool `json:"split_equally"`
	SplitStrategy *bool `json:"split_strategy"`
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		list = append(list, s)
	}
	return list, true
}

type PortfolioResponse struct {
	Results           []domain.StrategyResult `json:"results"`
	OverallTotalValue float64                 `json:"overall_total_value"`
	WeeklyTrend       []domain.WeeklyPoint    `json:"weekly_trend"`
}

func (m ApiHandler) portfolio(c *gin.Context) {
	var requestBody PortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(errors.New("Invalid JSON"), c, 400)
		return
	}

	investment, ok := requestBody.Investment.(float64)
	if !ok || investment < 5000 {
		returnErrorJsonCode(errors.New("Minimum investment is $5000."), c, 400)
		return
	}
	strategies, ok := stringList(requestBody.Strategies)
	if !ok || len(strategies) < 1 || len(strategies) > 2 {
		returnErrorJsonCode(errors.New("Please select one or two strategies."), c, 400)
		return
	}
	for _, name := range strategies {
		if _, err := internal.StrategyWeights(name); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
	}

	splitEqually := true
	if requestBody.SplitEqually != nil {
		splitEqually = *requestBody.SplitEqually
	}
	splitStrategy := true
	if requestBody.SplitStrategy != nil {
		splitStrategy = *requestBody.SplitStrategy
	}

	result, err := m.PortfolioHandler.ComputePortfolio(c, app.ComputePortfolioInput{
		Investment:    investment,
		Strategies:    strategies,
		SplitEqually:  splitEqually,
		SplitStrategy: splitStrategy,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, PortfolioResponse{
		Results:           result.Results,
		OverallTotalValue: result.OverallTotalValue,
		WeeklyTrend:       result.WeeklyTrend,
	})
}
