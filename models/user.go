package models

// User is the signed-in identity for the current session. It exists only for
// the lifetime of the session cookie and is never fetched from the backend;
// the display name is whatever username was submitted at login.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries either a token or the backend's failure message.
type LoginResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
