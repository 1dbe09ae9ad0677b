package handlers

import (
	"strings"

	"worklog-tracker/internal/middleware"
	"worklog-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type flashMessage struct {
	Kind string
	Text string
}

// render wraps c.HTML, draining pending flash messages and exposing the
// current identity to every template.
func (h *Set) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = takeFlashes(c)

	if username, ok := c.Get(middleware.CtxUsername); ok {
		data["CurrentUsername"] = username
	}
	if role, ok := c.Get(middleware.CtxRole); ok {
		data["IsAdmin"] = role == models.RoleAdmin
	}

	c.HTML(status, tmpl, data)
}

func flash(c *gin.Context, kind, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(kind + "|" + text)
	_ = sess.Save()
}

func takeFlashes(c *gin.Context) []flashMessage {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()

	out := make([]flashMessage, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		kind, text, found := strings.Cut(s, "|")
		if !found {
			kind, text = "info", s
		}
		out = append(out, flashMessage{Kind: kind, Text: text})
	}
	return out
}
