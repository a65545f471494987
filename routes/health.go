package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AddHealthCheckRoutes(group *gin.RouterGroup) {
	health := group.Group("/health")
	health.GET("", aliveCheck)
}

func aliveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
