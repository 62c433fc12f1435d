package middleware

import (
	"net/http"

	"campusforum/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "forum_session"

// RequireSession is the Gin middleware guarding authenticated routes. It
// resolves the session cookie against the server-side store and puts the
// user id into the context for handlers to use.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			c.Abort()
			return
		}

		userID, err := authService.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalSession resolves the session when a cookie is present but never
// rejects; used on public routes whose behavior differs for logged-in users.
func OptionalSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if userID, err := authService.ResolveSession(c.Request.Context(), token); err == nil {
				c.Set("userID", userID)
			}
		}
		c.Next()
	}
}

// RequireAdmin loads the current user and checks the admin flag. Must run
// after RequireSession.
func RequireAdmin(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			c.Abort()
			return
		}

		user, err := authService.GetUser(userID.(int64))
		if err != nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}
