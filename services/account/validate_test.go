package account

import "testing"

func TestLoginFormValidate(t *testing.T) {
	cases := []struct {
		name    string
		form    LoginForm
		wantKey string
	}{
		{"valid", LoginForm{Username: "alice", Password: "secret1"}, ""},
		{"empty username", LoginForm{Password: "secret1"}, "username"},
		{"whitespace username", LoginForm{Username: "   ", Password: "secret1"}, "username"},
		{"empty password", LoginForm{Username: "alice"}, "password"},
		{"short password", LoginForm{Username: "alice", Password: "abc"}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.form.Validate()
			if tc.wantKey == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := errs[tc.wantKey]; !ok {
				t.Errorf("expected error for %q, got %v", tc.wantKey, errs)
			}
		})
	}
}

func validRegisterForm() RegisterForm {
	return RegisterForm{
		Firstname:       "John",
		Lastname:        "Doe",
		Username:        "johndoe",
		Email:           "john@example.com",
		Password:        "Password1",
		ConfirmPassword: "Password1",
	}
}

func TestRegisterFormValidate(t *testing.T) {
	if errs := validRegisterForm().Validate(); len(errs) != 0 {
		t.Fatalf("valid form rejected: %v", errs)
	}

	mutate := []struct {
		name    string
		change  func(*RegisterForm)
		wantKey string
	}{
		{"missing firstname", func(f *RegisterForm) { f.Firstname = " " }, "firstname"},
		{"missing lastname", func(f *RegisterForm) { f.Lastname = "" }, "lastname"},
		{"short username", func(f *RegisterForm) { f.Username = "jd" }, "username"},
		{"bad email", func(f *RegisterForm) { f.Email = "john@" }, "email"},
		{"bad email no dot", func(f *RegisterForm) { f.Email = "john@example" }, "email"},
		{"short password", func(f *RegisterForm) { f.Password = "Pw1"; f.ConfirmPassword = "Pw1" }, "password"},
		{"no uppercase", func(f *RegisterForm) { f.Password = "password1"; f.ConfirmPassword = "password1" }, "password"},
		{"no lowercase", func(f *RegisterForm) { f.Password = "PASSWORD1"; f.ConfirmPassword = "PASSWORD1" }, "password"},
		{"no digit", func(f *RegisterForm) { f.Password = "Passwords"; f.ConfirmPassword = "Passwords" }, "password"},
		{"mismatch", func(f *RegisterForm) { f.ConfirmPassword = "Password2" }, "confirmPassword"},
	}
	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			form := validRegisterForm()
			tc.change(&form)
			errs := form.Validate()
			if _, ok := errs[tc.wantKey]; !ok {
				t.Errorf("expected error for %q, got %v", tc.wantKey, errs)
			}
		})
	}
}
