package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	healthStatusOK        = "ok"
	healthStatusUnhealthy = "unhealthy"
)

type HealthChecker interface {
	Health() error
}

// RegisterRoutes mounts the catalog routes. guard runs in front of every
// mutating route.
func RegisterRoutes(router *gin.Engine, handler *Handler, checker HealthChecker, guard ...gin.HandlerFunc) {
	catalog := router.Group("/products")
	catalog.GET("", handler.ListProducts)
	catalog.GET("/:"+productParam, handler.GetProduct)

	admin := catalog.Group("", guard...)
	admin.POST("", handler.CreateProduct)
	admin.PUT("/:"+productParam, handler.UpdateProduct)
	admin.DELETE("/:"+productParam, handler.DeleteProduct)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		if err := checker.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": healthStatusUnhealthy})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": healthStatusOK})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
