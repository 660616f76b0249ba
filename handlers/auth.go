package handlers

import (
	"net/http"

	"medico/api"
	"medico/models"
	"medico/services/account"
	"medico/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Login error strings, one per failure cause the page distinguishes.
const (
	loginBadCredentials = "Invalid username or password. Please try again."
	loginLocked         = "Your account has been locked. Please contact support."
	loginUnavailable    = "Service not available. Please try again later."
	loginGeneric        = "An error occurred during login. Please try again later."
	loginNoConnection   = "Unable to connect to the server. Please check your internet connection."
	loginFallback       = "Login failed. Please try again."

	registerFailed    = "Registration failed. Please try again."
	registeredMessage = "Registration successful! Please login to continue."
)

// LoginPage renders the sign-in form. Arriving from a successful registration
// shows a one-off flash message.
func (h *Handler) LoginPage(c *gin.Context) {
	data := gin.H{"Username": ""}
	if c.Query("registered") == "1" {
		data["Flash"] = registeredMessage
	}
	h.render(c, http.StatusOK, "login.html", data)
}

// loginErrorMessage maps a failed login call onto its user-facing string.
func loginErrorMessage(err error) string {
	if api.IsTransport(err) {
		return loginNoConnection
	}
	switch api.StatusCode(err) {
	case http.StatusForbidden:
		return loginLocked
	case http.StatusNotFound:
		return loginUnavailable
	default:
		return loginGeneric
	}
}

// LoginSubmit validates the form, calls the auth endpoint and, on success,
// stores the bearer token and issues the session cookie. The displayed name is
// taken from the submitted username; no profile is fetched.
func (h *Handler) LoginSubmit(c *gin.Context) {
	form := account.LoginForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		h.render(c, http.StatusOK, "login.html", gin.H{
			"FieldErrors": fieldErrors,
			"Username":    form.Username,
		})
		return
	}

	resp, err := h.Backend.Login(c.Request.Context(), models.LoginRequest{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		h.render(c, http.StatusOK, "login.html", gin.H{
			"SubmitError": loginErrorMessage(err),
			"Username":    form.Username,
		})
		return
	}

	if resp.Token == "" {
		message := loginFallback
		if resp.Message == "Bad credentials" {
			message = loginBadCredentials
		}
		h.render(c, http.StatusOK, "login.html", gin.H{
			"SubmitError": message,
			"Username":    form.Username,
		})
		return
	}

	utils.SetAuthToken(c, resp.Token)

	user := models.User{Username: form.Username, Name: form.Username}
	session, err := h.Sessions.Issue(user)
	if err != nil {
		h.Logger.Error("failed to issue session", zap.Error(err))
		h.render(c, http.StatusOK, "login.html", gin.H{
			"SubmitError": loginFallback,
			"Username":    form.Username,
		})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, session, 0, "/", "", false, true)

	c.Redirect(http.StatusFound, "/")
}

// RegisterPage renders the sign-up form.
func (h *Handler) RegisterPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{})
}

// RegisterSubmit validates the form and creates the account. There is no
// auto-login; success lands on the login page with a flash message. Backend
// failures surface the server's message when it sent one.
func (h *Handler) RegisterSubmit(c *gin.Context) {
	form := account.RegisterForm{
		Firstname:       c.PostForm("firstname"),
		Lastname:        c.PostForm("lastname"),
		Username:        c.PostForm("username"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
	}

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		h.render(c, http.StatusOK, "register.html", gin.H{
			"FieldErrors": fieldErrors,
			"Form":        form,
		})
		return
	}

	err := h.Backend.Register(c.Request.Context(), models.RegisterRequest{
		Firstname: form.Firstname,
		Lastname:  form.Lastname,
		Username:  form.Username,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		message := api.ServerMessage(err)
		if message == "" {
			message = registerFailed
		}
		h.render(c, http.StatusOK, "register.html", gin.H{
			"SubmitError": message,
			"Form":        form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/login?registered=1")
}

// Logout clears the bearer token and the session, returning to home.
func (h *Handler) Logout(c *gin.Context) {
	utils.ClearAuthToken(c)
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
