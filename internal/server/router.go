package server

import (
	"net/http"

	"worklog-tracker/internal/config"
	"worklog-tracker/internal/handlers"
	"worklog-tracker/internal/middleware"
	"worklog-tracker/internal/observability"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(cfg *config.Config, logger *zap.Logger, h *handlers.Set) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("worklog_session", store))

	// PUBLIC
	r.GET("/", h.Landing)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.StaticFile("/logo.png", "./web/static/logo.png")
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	auth := r.Group("/", middleware.RequireAuth())
	auth.GET("/summary", h.SummaryRedirect)
	auth.GET("/chart-data", h.ChartData)

	// EMPLOYEE
	emp := auth.Group("/employee", middleware.RequireEmployee())
	emp.GET("/dashboard", h.EmployeeDashboard)
	emp.GET("/update", h.ShowUpdate)
	emp.POST("/update", h.SubmitLog)
	emp.GET("/summary", h.EmployeeSummary)

	// ADMIN
	adm := auth.Group("/admin", middleware.RequireAdmin())
	adm.GET("/summary", h.AdminSummary)
	adm.GET("/dashboard", h.AdminDashboard)
	adm.GET("/create_employee", h.ShowCreateEmployee)
	adm.POST("/create_employee", h.CreateEmployee)
	adm.GET("/view_employees", h.ViewEmployees)
	adm.GET("/tracker", h.Tracker)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
