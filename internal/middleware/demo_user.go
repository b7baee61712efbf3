package middleware

import "github.com/gin-gonic/gin"

const userIDKey = "userID"

// DemoUser returns a Gin middleware that acts on behalf of the configured
// demo user by setting its ID on the context for every request.
func DemoUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, userID)
		c.Next()
	}
}
