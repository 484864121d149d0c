package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. IsAdminKey is the only authorization marker in the system.
const (
	IsAdminKey  = "isAdmin"
	UsernameKey = "username"
)

// RequireAdmin gates every route of the usuarios section. Requests without
// an authenticated-admin session are redirected to the login screen and the
// downstream handler never runs. Applies to GETs and POSTs alike.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if isAdmin, ok := session.Get(IsAdminKey).(bool); !ok || !isAdmin {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the current session carries the admin
// marker. Used by handlers to decide redirects and by views for the nav.
func IsAuthenticated(c *gin.Context) bool {
	isAdmin, ok := sessions.Default(c).Get(IsAdminKey).(bool)
	return ok && isAdmin
}
