package usecase

import (
	"context"
	"strings"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/pkg/validate"
	"github.com/meshpay/meshpay-client/internal/ports"
)

type LoginForm struct {
	gw    ports.Gateway
	store ports.SessionStore

	Email    string
	Password string
	// Errors holds per-field validation messages, keyed by field name.
	Errors map[string]string
	Alert  *Alert
}

func NewLoginForm(gw ports.Gateway, store ports.SessionStore) *LoginForm {
	return &LoginForm{gw: gw, store: store, Errors: make(map[string]string)}
}

// Field edits clear that field's error immediately.

func (f *LoginForm) SetEmail(v string) {
	f.Email = v
	delete(f.Errors, "email")
}

func (f *LoginForm) SetPassword(v string) {
	f.Password = v
	delete(f.Errors, "password")
}

// Validate re-checks every field and reports all failures together.
func (f *LoginForm) Validate() bool {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !validate.Email(f.Email) {
		errs["email"] = "Please enter a valid email"
	}

	if strings.TrimSpace(f.Password) == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	f.Errors = errs
	return len(errs) == 0
}

// Submit validates, performs the login call and persists the session. On
// success it returns the redirect target (honored by the UI after
// RedirectDelay).
func (f *LoginForm) Submit(ctx context.Context) (domain.Page, bool) {
	if !f.Validate() {
		return "", false
	}
	f.Alert = nil

	user, err := f.gw.Login(ctx, domain.LoginRequest{Email: f.Email, Password: f.Password})
	if err != nil {
		f.Alert = errorAlert(alertMessage(err))
		return "", false
	}
	if err := f.store.SetUser(user); err != nil {
		logger.Error().Err(err).Msg("failed to persist session")
		f.Alert = errorAlert("An unexpected error occurred")
		return "", false
	}

	f.Alert = &Alert{Type: AlertSuccess, Message: "Login successful! Redirecting..."}
	return domain.PageDashboard, true
}
