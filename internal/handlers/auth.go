package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"worklog-tracker/internal/middleware"
	"worklog-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Landing serves the login page at /.
func (h *Set) Landing(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", nil)
}

func (h *Set) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", nil)
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Set) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "danger", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.users.ByUsername(c.Request.Context(), form.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Warn("credential lookup failed", zap.Error(err))
		}
		// Unknown user and wrong password are indistinguishable on purpose.
		flash(c, "danger", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		flash(c, "danger", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user", user.Username)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	if user.Role == models.RoleEmployee {
		h.addAlert(c, fmt.Sprintf("Employee %s logged in.", user.Username))
	}

	if user.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/employee/dashboard")
}

func (h *Set) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	if username, _ := sess.Get("user").(string); username != "" {
		if role, _ := sess.Get("role").(string); models.UserRole(role) == models.RoleEmployee {
			h.addAlert(c, fmt.Sprintf("Employee %s logged out.", username))
		}
		sess.Clear()
		_ = sess.Save()
	}
	c.Redirect(http.StatusFound, "/login")
}

// SummaryRedirect sends the caller to the summary page for their role.
func (h *Set) SummaryRedirect(c *gin.Context) {
	role, _ := c.MustGet(middleware.CtxRole).(models.UserRole)
	switch role {
	case models.RoleAdmin:
		c.Redirect(http.StatusFound, "/admin/summary")
	case models.RoleEmployee:
		c.Redirect(http.StatusFound, "/employee/summary")
	default:
		flash(c, "danger", "You do not have permission to view a summary.")
		c.Redirect(http.StatusFound, "/login")
	}
}

func (h *Set) addAlert(c *gin.Context, message string) {
	if err := h.alerts.Append(c.Request.Context(), message); err != nil {
		h.log.Warn("failed to append alert", zap.String("message", message), zap.Error(err))
	}
}
