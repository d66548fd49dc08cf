package middleware

import (
	"strings"

	userRepo "roamly/database/repository/user"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// OptionalJWTAuthMiddleware sets "userID" when a valid bearer token is
// present and continues anonymously otherwise. Used on routes that serve
// both registered and unregistered callers, like invitation responses.
func OptionalJWTAuthMiddleware(userRepo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.Next()
			return
		}

		usr, err := userRepo.GetByIDWithProjection(userID, bson.M{"id": 1, "tokenHash": 1})
		if err != nil || usr == nil || usr.TokenHash == "" || usr.TokenHash != utils.HashToken(tokenString) {
			c.Next()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
