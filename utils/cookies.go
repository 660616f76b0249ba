package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// AuthTokenCookie holds the opaque bearer token issued by the booking API.
	AuthTokenCookie = "authToken"
	// SessionCookie holds the signed session claims for the current user.
	SessionCookie = "medicoSession"
)

// SetAuthToken stores the bearer token. The token is opaque to this app: it is
// never inspected, validated or refreshed, only forwarded on authenticated calls.
func SetAuthToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthTokenCookie, token, 0, "/", "", false, true)
}

// GetAuthToken returns the stored bearer token, or an empty string.
func GetAuthToken(c *gin.Context) string {
	token, err := c.Cookie(AuthTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// ClearAuthToken removes the bearer token cookie.
func ClearAuthToken(c *gin.Context) {
	c.SetCookie(AuthTokenCookie, "", -1, "/", "", false, true)
}
