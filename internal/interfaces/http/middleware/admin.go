package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminSecretHeader carries the shared admin credential for setup endpoints
const AdminSecretHeader = "X-Admin-Secret"

// AdminMiddleware guards the admin routes with a shared secret. An empty
// configured secret disables admin access entirely rather than leaving the
// routes open.
func AdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(AdminSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "admin access denied",
			})
			return
		}
		c.Next()
	}
}
