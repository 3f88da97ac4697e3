package cmd

import (
	"stockportfolio/api"
	"stockportfolio/internal"
	"stockportfolio/internal/app"
	"stockportfolio/internal/repository"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	portfolioHandler := app.PortfolioHandler{
		PriceRepository: repository.NewYahooPriceRepository(),
		ChartRepository: repository.NewChartRepository(),
		Rand:            internal.SystemRand{},
	}

	return &api.ApiHandler{
		PortfolioHandler: portfolioHandler,
	}, nil
}
