package handlers

import (
	"net/http"
	"strings"
	"time"

	"worklog-tracker/internal/middleware"
	"worklog-tracker/internal/models"
	"worklog-tracker/internal/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Set) EmployeeDashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "employee_dashboard.html", nil)
}

// ShowUpdate lists the caller's own log entries above the submission form.
func (h *Set) ShowUpdate(c *gin.Context) {
	username := c.MustGet(middleware.CtxUsername).(string)

	logs, err := h.logs.ByMember(c.Request.Context(), username)
	if err != nil {
		h.log.Warn("failed to load work logs", zap.String("member", username), zap.Error(err))
		logs = nil
	}

	h.render(c, http.StatusOK, "employee_update.html", gin.H{
		"EmployeeName": username,
		"Logs":         logs,
		"Functions":    models.Catalog(),
	})
}

// SubmitLog records one immutable work entry. The team member is always the
// session identity, never a form value.
func (h *Set) SubmitLog(c *gin.Context) {
	username := c.MustGet(middleware.CtxUsername).(string)

	entry := models.WorkLog{
		TeamMember:            username,
		Function:              strings.TrimSpace(c.PostForm("function")),
		Date:                  parseDate(c.PostForm("date")),
		FileNumber:            strings.TrimSpace(c.PostForm("file_number")),
		Status:                strings.TrimSpace(c.PostForm("status")),
		Tier1EscalationReason: strings.TrimSpace(c.PostForm("tier1_escalation")),
		IMEscalationReason:    strings.TrimSpace(c.PostForm("im_escalation")),
		Department:            strings.TrimSpace(c.PostForm("department")),
		Comments:              strings.TrimSpace(c.PostForm("comments")),
	}

	if err := h.logs.Append(c.Request.Context(), &entry); err != nil {
		h.log.Warn("failed to save work log", zap.String("member", username), zap.Error(err))
		flash(c, "danger", "Error saving data.")
	} else {
		flash(c, "success", "Work log added successfully!")
	}
	c.Redirect(http.StatusFound, "/employee/update")
}

// EmployeeSummary shows the caller's own per-function counts.
func (h *Set) EmployeeSummary(c *gin.Context) {
	username := c.MustGet(middleware.CtxUsername).(string)

	logs, err := h.logs.ByMember(c.Request.Context(), username)
	if err != nil {
		h.log.Warn("failed to load work logs", zap.String("member", username), zap.Error(err))
		logs = nil
	}

	counts, functions := report.Summary(logs)
	h.render(c, http.StatusOK, "employee_summary.html", gin.H{
		"EmployeeName": username,
		"Counts":       counts,
		"Functions":    functions,
	})
}

// parseDate tolerates malformed dates: the entry is kept, the date is nil and
// the row is skipped by date-based aggregation.
func parseDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}
