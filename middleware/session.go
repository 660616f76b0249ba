package middleware

import (
	"net/http"

	"medico/models"
	"medico/services/account"
	"medico/utils"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// SessionMiddleware decodes the session cookie into the request context. A
// missing or invalid cookie simply means an anonymous visitor; it is never an
// error.
func SessionMiddleware(sessions *account.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(utils.SessionCookie)
		if err == nil && value != "" {
			if user, err := sessions.Decode(value); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the signed-in user for this request, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// RedirectAuthenticated sends an already signed-in user away from the login
// and register pages, back to home.
func RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
