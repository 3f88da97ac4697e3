package api

import (
	"fmt"
	"time"

	"stockportfolio/internal/app"
	"stockportfolio/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	PortfolioHandler app.PortfolioHandler
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

// Router builds the gin engine. Split out of StartApi so resolver tests
// can drive it with httptest.
func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})
	router.POST("/api/portfolio", m.portfolio)
	router.GET("/api/market-ticker", m.marketTicker)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Warnf("request failed: %v", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.NewString()
	ctx.Set("requestID", requestID)

	start := time.Now().UTC()
	ctx.Next()

	logger.FromContext(ctx).Infow("request",
		"requestID", requestID,
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
