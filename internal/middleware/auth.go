package middleware

import (
	"net/http"

	"worklog-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Context keys under which the authenticated identity is exposed to handlers.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// RequireAuth rejects unauthenticated requests with a redirect to the login
// page. On success the session identity is copied into the request context so
// handlers never read ambient session state themselves.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		username, _ := sess.Get("user").(string)
		if username == "" {
			flash(c, "warning", "You need to be logged in to view this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		role, _ := sess.Get("role").(string)
		c.Set(CtxUsername, username)
		c.Set(CtxRole, models.UserRole(role))
		c.Next()
	}
}

// RequireAdmin bounces non-admins to their own dashboard with a denial notice.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(models.RoleAdmin, "/employee/dashboard")
}

// RequireEmployee bounces admins to the admin dashboard.
func RequireEmployee() gin.HandlerFunc {
	return requireRole(models.RoleEmployee, "/admin/dashboard")
}

func requireRole(want models.UserRole, denyTarget string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.MustGet(CtxRole).(models.UserRole)
		if role != want {
			flash(c, "danger", "You do not have permission to access this page.")
			c.Redirect(http.StatusFound, denyTarget)
			c.Abort()
			return
		}
		c.Next()
	}
}

func flash(c *gin.Context, kind, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(kind + "|" + text)
	_ = sess.Save()
}
