package handlers

import (
	"net/http"

	"worklog-tracker/internal/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChartData returns the per-date per-function matrix as JSON. A store failure
// degrades to an empty array.
func (h *Set) ChartData(c *gin.Context) {
	logs, err := h.logs.All(c.Request.Context())
	if err != nil {
		h.log.Warn("failed to load work logs for chart", zap.Error(err))
		c.JSON(http.StatusOK, []report.ChartRow{})
		return
	}
	c.JSON(http.StatusOK, report.ChartRows(logs))
}
