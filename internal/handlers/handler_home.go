package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports liveness for load balancers and uptime checks.
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
