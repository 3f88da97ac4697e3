package api

import (
	"stockportfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type MarketTickerResponse struct {
	MarketTicker map[string]domain.PriceQuote `json:"market_ticker"`
}

func (m ApiHandler) marketTicker(c *gin.Context) {
	ticker, err := m.PortfolioHandler.MarketTicker(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, MarketTickerResponse{MarketTicker: ticker})
}
