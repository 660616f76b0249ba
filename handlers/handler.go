package handlers

import (
	"medico/api"
	"medico/middleware"
	"medico/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const appName = "Medico"

// Handler carries the dependencies shared by all page handlers.
type Handler struct {
	Backend  api.Backend
	Sessions *account.Sessions
	Logger   *zap.Logger
}

// New assembles the page handler set.
func New(backend api.Backend, sessions *account.Sessions, logger *zap.Logger) *Handler {
	return &Handler{Backend: backend, Sessions: sessions, Logger: logger}
}

// render wraps c.HTML with the context every page needs: the app name and the
// signed-in user (nil for anonymous visitors).
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["AppName"] = appName
	data["User"] = middleware.CurrentUser(c)
	c.HTML(status, name, data)
}
