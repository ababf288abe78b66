// README: Allow-all CORS middleware for the web client.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows all origins, methods, and headers, matching the policy
// the web client was built against.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
