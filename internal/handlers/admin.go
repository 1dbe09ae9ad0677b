package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"worklog-tracker/internal/models"
	"worklog-tracker/internal/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength applies to provisioning via HTTP and the CLI alike.
const MinPasswordLength = 8

// AdminSummary shows global per-function counts over all employees.
func (h *Set) AdminSummary(c *gin.Context) {
	logs, err := h.logs.All(c.Request.Context())
	if err != nil {
		h.log.Warn("failed to load work logs", zap.Error(err))
		logs = nil
	}

	counts, functions := report.Summary(logs)
	h.render(c, http.StatusOK, "admin_summary.html", gin.H{
		"Counts":    counts,
		"Functions": functions,
	})
}

// AdminDashboard shows the rolling alert feed, newest first.
func (h *Set) AdminDashboard(c *gin.Context) {
	alerts, err := h.alerts.Recent(c.Request.Context())
	if err != nil {
		h.log.Warn("failed to load alerts", zap.Error(err))
		alerts = nil
	}
	h.render(c, http.StatusOK, "admin_dashboard.html", gin.H{"Alerts": alerts})
}

func (h *Set) ShowCreateEmployee(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_create_employee.html", nil)
}

// CreateEmployee provisions a credential record. Validation failures redirect
// back to the form with a specific message.
func (h *Set) CreateEmployee(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("team_member"))
	department := strings.TrimSpace(c.PostForm("department"))
	role := strings.TrimSpace(c.PostForm("role"))
	shift := strings.TrimSpace(c.PostForm("shift"))
	location := strings.TrimSpace(c.PostForm("location"))
	password := c.PostForm("password")

	if username == "" || department == "" || role == "" || shift == "" || location == "" || password == "" {
		flash(c, "danger", "All fields are required.")
		c.Redirect(http.StatusFound, "/admin/create_employee")
		return
	}
	if len(password) < MinPasswordLength {
		flash(c, "danger", "Password must be at least 8 characters long.")
		c.Redirect(http.StatusFound, "/admin/create_employee")
		return
	}
	if r := models.UserRole(role); r != models.RoleAdmin && r != models.RoleEmployee {
		flash(c, "danger", "Invalid role.")
		c.Redirect(http.StatusFound, "/admin/create_employee")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.users.ByUsername(ctx, username); err == nil {
		flash(c, "danger", fmt.Sprintf("Employee %q already exists.", username))
		c.Redirect(http.StatusFound, "/admin/create_employee")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Warn("credential lookup failed", zap.Error(err))
		flash(c, "danger", "Error saving employee.")
		c.Redirect(http.StatusFound, "/admin/create_employee")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Warn("failed to hash password", zap.Error(err))
		flash(c, "danger", "Error saving employee.")
		c.Redirect(http.StatusFound, "/admin/create_employee")
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.UserRole(role),
		Department:   department,
		Shift:        shift,
		Location:     location,
	}
	if err := h.users.Create(ctx, &user); err != nil {
		h.log.Warn("failed to create employee", zap.String("username", username), zap.Error(err))
		flash(c, "danger", "Error saving employee.")
		c.Redirect(http.StatusFound, "/admin/create_employee")
		return
	}

	flash(c, "success", fmt.Sprintf("Employee %q created successfully!", username))
	c.Redirect(http.StatusFound, "/admin/view_employees")
}

// ViewEmployees renders the roster with derived Active/Inactive status.
func (h *Set) ViewEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.users.List(ctx)
	if err != nil {
		h.log.Warn("failed to load users", zap.Error(err))
		users = nil
	}
	logs, err := h.logs.All(ctx)
	if err != nil {
		h.log.Warn("failed to load work logs", zap.Error(err))
		logs = nil
	}

	h.render(c, http.StatusOK, "admin_view_employees.html", gin.H{
		"Employees": report.ActivityStatuses(users, logs, time.Now()),
	})
}

// Tracker lists all logs, or one employee's when ?employee=NAME is given.
func (h *Set) Tracker(c *gin.Context) {
	ctx := c.Request.Context()
	selected := c.Query("employee")

	var logs []models.WorkLog
	var err error
	if selected != "" {
		logs, err = h.logs.ByMember(ctx, selected)
	} else {
		logs, err = h.logs.All(ctx)
	}
	if err != nil {
		h.log.Warn("failed to load work logs", zap.Error(err))
		flash(c, "danger", "Error reading log data.")
		logs = nil
	}

	users, err := h.users.List(ctx)
	if err != nil {
		h.log.Warn("failed to load users", zap.Error(err))
		users = nil
	}
	employees := make([]string, 0, len(users))
	for _, u := range users {
		employees = append(employees, u.Username)
	}

	h.render(c, http.StatusOK, "admin_tracker.html", gin.H{
		"Employees":        employees,
		"Logs":             logs,
		"SelectedEmployee": selected,
	})
}
