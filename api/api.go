package api

import (
	"context"
	"fmt"
	"time"

	"tacticalalloc/internal/app"
	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Rebalancer is the part of app.RebalancerHandler the API serves
type Rebalancer interface {
	Rebalance(ctx context.Context, in app.RebalanceInput) (*domain.RebalanceReport, error)
	CurrentHoldings(ctx context.Context) (*domain.PortfolioSnapshot, error)
}

type ApiHandler struct {
	Rebalancer Rebalancer
	Logger     *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to tactical asset allocation"})
	})
	router.GET("/holdings", m.holdings)
	router.GET("/allocations", m.allocations)
	router.POST("/rebalance", m.rebalance)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) baseLogger() *zap.SugaredLogger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.S()
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorf("request failed with %d: %v", code, err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware tags the request context with a logger carrying a
// request id, then logs the outcome
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	start := time.Now()
	log := m.baseLogger().With(
		"requestID", uuid.NewString(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), log))

	c.Next()

	log.Infow("request completed",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
