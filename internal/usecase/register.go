package usecase

import (
	"context"
	"strings"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/pkg/validate"
	"github.com/meshpay/meshpay-client/internal/ports"
)

type RegisterForm struct {
	gw    ports.Gateway
	store ports.SessionStore

	Fullname string
	Email    string
	Password string
	Phone    string
	Errors   map[string]string
	Alert    *Alert
}

func NewRegisterForm(gw ports.Gateway, store ports.SessionStore) *RegisterForm {
	return &RegisterForm{gw: gw, store: store, Errors: make(map[string]string)}
}

func (f *RegisterForm) SetFullname(v string) {
	f.Fullname = v
	delete(f.Errors, "fullname")
}

func (f *RegisterForm) SetEmail(v string) {
	f.Email = v
	delete(f.Errors, "email")
}

func (f *RegisterForm) SetPassword(v string) {
	f.Password = v
	delete(f.Errors, "password")
}

func (f *RegisterForm) SetPhone(v string) {
	f.Phone = v
	delete(f.Errors, "phone")
}

func (f *RegisterForm) Validate() bool {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Fullname) == "" {
		errs["fullname"] = "Full name is required"
	} else if len(strings.TrimSpace(f.Fullname)) < 2 {
		errs["fullname"] = "Full name must be at least 2 characters"
	}

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

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !validate.Phone(f.Phone) {
		errs["phone"] = "Phone must be 11 digits starting with 0"
	}

	f.Errors = errs
	return len(errs) == 0
}

func (f *RegisterForm) Submit(ctx context.Context) (domain.Page, bool) {
	if !f.Validate() {
		return "", false
	}
	f.Alert = nil

	user, err := f.gw.Register(ctx, domain.RegisterRequest{
		Fullname: f.Fullname,
		Email:    f.Email,
		Password: f.Password,
		Phone:    f.Phone,
	})
	if err != nil {
		f.Alert = errorAlert(alertMessage(err))
		return "", false
	}
	if err := f.store.SetUser(user); err != nil {
		logger.Error().Err(err).Msg("failed to persist session")
		f.Alert = errorAlert("An unexpected error occurred")
		return "", false
	}

	f.Alert = &Alert{Type: AlertSuccess, Message: "Account created successfully! Redirecting..."}
	return domain.PageDashboard, true
}
