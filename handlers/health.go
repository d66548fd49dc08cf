package handlers

import (
	"net/http"

	"roamly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    map[bool]string{true: "ok", false: "degraded"}[status.Mongo],
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}

// TestHandler is a cheap reachability probe for clients hunting a working
// base URL.
func TestHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roamly"})
}
