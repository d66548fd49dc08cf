package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roamly/utils"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// shared application logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentUserID reads the user id the auth middleware stored on the context.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
