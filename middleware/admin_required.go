// Package middleware description is Middleware that checks if the user is an admin.
// file: middleware/admin_required.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"ycfl-league/logger"
)

// AdminRequired blocks requests whose session lacks the admin flag.
// API callers get 401 JSON; page requests are sent to the login form.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin := IsAdmin(c)
		logger.Debug.Printf("AdminRequired Middleware - path=%s isAdmin=%v", c.Request.URL.Path, isAdmin)

		if !isAdmin {
			logger.Warn.Printf("AdminRequired Middleware - Unauthorized attempt blocked on %s", c.Request.URL.Path)
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			} else {
				c.Redirect(http.StatusFound, "/admin/login")
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
