package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/ports"
)

// AdminDashboard lists every user with a search filter and balance summary.
// The gating (admin menu only shown to admin sessions) happens in the
// rendering layer via App.IsAdmin; this is not a security boundary.
type AdminDashboard struct {
	gw    ports.Gateway
	store ports.SessionStore

	users  []domain.User
	search string
	Alert  *Alert
}

func NewAdminDashboard(gw ports.Gateway, store ports.SessionStore) *AdminDashboard {
	return &AdminDashboard{gw: gw, store: store}
}

func (a *AdminDashboard) Mount(ctx context.Context) (domain.Page, bool) {
	if a.store.GetUser() == nil {
		return domain.PageWelcome, true
	}
	a.Load(ctx)
	return "", false
}

func (a *AdminDashboard) Load(ctx context.Context) {
	a.Alert = nil
	users, err := a.gw.Users(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNetwork) {
			a.Alert = errorAlert("Network error occurred")
		} else {
			a.Alert = errorAlert("Failed to fetch users")
		}
		return
	}
	a.users = users
}

func (a *AdminDashboard) SetSearch(term string) {
	a.search = term
}

func (a *AdminDashboard) Users() []domain.User {
	return a.users
}

// Filtered matches the search term against fullname, email, phone and
// account number.
func (a *AdminDashboard) Filtered() []domain.User {
	if a.search == "" {
		return a.users
	}
	term := strings.ToLower(a.search)
	var out []domain.User
	for _, u := range a.users {
		if strings.Contains(strings.ToLower(u.Fullname), term) ||
			strings.Contains(strings.ToLower(u.Email), term) ||
			strings.Contains(u.Phone, a.search) ||
			strings.Contains(u.AccountNumber, a.search) {
			out = append(out, u)
		}
	}
	return out
}

func (a *AdminDashboard) TotalBalance() float64 {
	var total float64
	for _, u := range a.users {
		total += u.Balance
	}
	return total
}
