package middleware

import "github.com/gin-gonic/gin"

// adminUserKey is the key used to store the authenticated admin username in
// the request context.
const adminUserKey = contextKey("adminUser")

// GetAdminUserFromContext retrieves the authenticated admin username from the
// Gin context. It returns the username and a boolean indicating if it was found.
func GetAdminUserFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(adminUserKey)
	if val == nil {
		return "", false
	}
	username, ok := val.(string)
	if !ok {
		return "", false
	}
	return username, true
}
