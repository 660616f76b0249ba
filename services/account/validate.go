package account

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`\d`)
)

// LoginForm is the credentials form on the login page.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks the login form before any network call is made. The returned
// map is keyed by field name; an empty map means the form may be submitted.
func (f LoginForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}

// RegisterForm is the sign-up form.
type RegisterForm struct {
	Firstname       string
	Lastname        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate applies the registration rules: non-empty names, username length,
// email shape, password composition and confirmation match. Nothing is sent to
// the backend unless this comes back empty.
func (f RegisterForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Firstname) == "" {
		errs["firstname"] = "First name is required"
	}
	if strings.TrimSpace(f.Lastname) == "" {
		errs["lastname"] = "Last name is required"
	}

	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	} else if len(f.Username) < 3 {
		errs["username"] = "Username must be at least 3 characters"
	}

	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	} else if !hasLower.MatchString(f.Password) || !hasUpper.MatchString(f.Password) || !hasDigit.MatchString(f.Password) {
		errs["password"] = "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}

	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}
