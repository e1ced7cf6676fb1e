package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/pkg/poll"
	"github.com/meshpay/meshpay-client/internal/ports"
)

const recentTransactionCount = 3

// Dashboard owns the balance card, the recent-activity list and the unread
// notification banner. Its state is mutex-guarded because the notification
// poller writes from its own goroutine; the later-arriving response wins.
type Dashboard struct {
	gw       ports.Gateway
	store    ports.SessionStore
	interval time.Duration

	mu            sync.Mutex
	user          domain.User
	balance       float64
	connected     bool
	alert         *Alert
	notifications []domain.Notification
	recent        []domain.Transaction

	task *poll.Task
}

func NewDashboard(gw ports.Gateway, store ports.SessionStore, interval time.Duration) *Dashboard {
	return &Dashboard{gw: gw, store: store, interval: interval, connected: true}
}

// Mount loads the session, fetches balance and recent activity, and starts
// the notification poll task. Without a session it redirects to welcome.
func (d *Dashboard) Mount(ctx context.Context) (domain.Page, bool) {
	u := d.store.GetUser()
	if u == nil {
		return domain.PageWelcome, true
	}
	d.mu.Lock()
	d.user = *u
	d.mu.Unlock()

	d.refreshBalance(ctx)
	d.refreshRecent(ctx)

	d.task = poll.New(d.interval, d.pollNotifications)
	d.task.Start(ctx)
	return "", false
}

// Close cancels the poll task deterministically; no background work
// survives the view.
func (d *Dashboard) Close() {
	if d.task != nil {
		d.task.Stop()
	}
}

func (d *Dashboard) User() domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.user
}

func (d *Dashboard) Balance() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.balance
}

func (d *Dashboard) Connected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connected
}

func (d *Dashboard) Alert() *Alert {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alert
}

func (d *Dashboard) ClearAlert() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alert = nil
}

func (d *Dashboard) Recent() []domain.Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Transaction, len(d.recent))
	copy(out, d.recent)
	return out
}

// UnreadNotifications is the banner content; empty means no banner.
func (d *Dashboard) UnreadNotifications() []domain.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Notification, len(d.notifications))
	copy(out, d.notifications)
	return out
}

// Refresh re-fetches the balance on user request.
func (d *Dashboard) Refresh(ctx context.Context) {
	d.refreshBalance(ctx)
}

// DismissNotifications marks everything read server-side, re-fetches the
// balance and recent activity, then clears the banner locally. The mark-read
// outcome is deliberately not checked.
func (d *Dashboard) DismissNotifications(ctx context.Context) {
	userID := d.User().ID
	if err := d.gw.MarkNotificationsRead(ctx, userID); err != nil {
		logger.Warn().Err(err).Msg("mark notifications read failed")
	}
	d.refreshBalance(ctx)
	d.refreshRecent(ctx)

	d.mu.Lock()
	d.notifications = nil
	d.mu.Unlock()
}

func (d *Dashboard) refreshBalance(ctx context.Context) {
	balance, err := d.gw.Balance(ctx, d.User().AccountNumber)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		if errors.Is(err, domain.ErrNetwork) {
			d.alert = errorAlert("Network error")
		} else {
			d.alert = errorAlert("Failed to fetch balance")
		}
		d.connected = false
		return
	}
	d.balance = balance
	d.connected = true
}

func (d *Dashboard) refreshRecent(ctx context.Context) {
	transactions, err := d.gw.Transactions(ctx, d.User().AccountNumber)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.recent = nil
		return
	}
	if len(transactions) > recentTransactionCount {
		transactions = transactions[:recentTransactionCount]
	}
	d.recent = transactions
}

// pollNotifications runs on every poll tick. A failed poll is silent and
// leaves the previous notification state in place; a response arriving after
// the task is cancelled is discarded.
func (d *Dashboard) pollNotifications(ctx context.Context) {
	list, err := d.gw.Notifications(ctx, d.User().ID)
	if err != nil || ctx.Err() != nil {
		return
	}
	unread := domain.Unread(list)

	d.mu.Lock()
	d.notifications = unread
	d.mu.Unlock()
}
