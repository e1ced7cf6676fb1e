// Package usecase holds the navigation controller and the page controllers.
// Controllers own local form/display state, call the gateway through ports,
// and request navigation; rendering lives in the terminal adapter.
package usecase

import (
	"time"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/ports"
)

// RedirectDelay is how long the success alert stays on screen before the
// login/register redirect to the dashboard.
const RedirectDelay = 1500 * time.Millisecond

// App holds the single current page. Navigate replaces it unconditionally;
// there is no history stack and no transition legality check.
type App struct {
	gw           ports.Gateway
	store        ports.SessionStore
	pollInterval time.Duration
	page         domain.Page
}

func NewApp(gw ports.Gateway, store ports.SessionStore, pollInterval time.Duration) *App {
	return &App{gw: gw, store: store, pollInterval: pollInterval, page: domain.PageWelcome}
}

// Start picks the boot page: dashboard when a session already exists,
// welcome otherwise.
func (a *App) Start() {
	if a.store.IsAuthenticated() {
		a.page = domain.PageDashboard
		return
	}
	a.page = domain.PageWelcome
}

func (a *App) Page() domain.Page {
	return a.page
}

func (a *App) Navigate(page domain.Page) {
	if !page.Valid() {
		page = domain.PageWelcome
	}
	a.page = page
}

func (a *App) IsAdmin() bool {
	return a.store.IsAdmin()
}

// Logout clears the session wholesale and returns to the welcome page.
func (a *App) Logout() {
	if err := a.store.Clear(); err != nil {
		logger.Error().Err(err).Msg("failed to clear session")
	}
	a.page = domain.PageWelcome
}

// Controller factories; each page view gets a fresh controller on mount.

func (a *App) LoginForm() *LoginForm {
	return NewLoginForm(a.gw, a.store)
}

func (a *App) RegisterForm() *RegisterForm {
	return NewRegisterForm(a.gw, a.store)
}

func (a *App) Dashboard() *Dashboard {
	return NewDashboard(a.gw, a.store, a.pollInterval)
}

func (a *App) SendMoney() *SendMoney {
	return NewSendMoney(a.gw, a.store)
}

func (a *App) History() *History {
	return NewHistory(a.gw, a.store)
}

func (a *App) AdminDashboard() *AdminDashboard {
	return NewAdminDashboard(a.gw, a.store)
}
