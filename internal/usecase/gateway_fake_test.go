package usecase

import (
	"context"
	"sync"

	"github.com/meshpay/meshpay-client/internal/domain"
)

// fakeGateway is a programmable ports.Gateway double. Each call site reads
// the corresponding field under the mutex, so tests can flip behavior while
// the dashboard poller is running.
type fakeGateway struct {
	mu sync.Mutex

	loginUser    domain.User
	loginErr     error
	registerUser domain.User
	registerErr  error
	transferErr  error
	lastTransfer *domain.TransferRequest

	balance    float64
	balanceErr error

	names       map[string]string
	verifyErr   error
	verifyCalls []string

	users    []domain.User
	usersErr error

	transactions    []domain.Transaction
	transactionsErr error

	notifications    []domain.Notification
	notificationsErr error

	markReadCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{names: make(map[string]string)}
}

func (g *fakeGateway) Login(ctx context.Context, req domain.LoginRequest) (domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loginUser, g.loginErr
}

func (g *fakeGateway) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.registerUser, g.registerErr
}

func (g *fakeGateway) Transfer(ctx context.Context, req domain.TransferRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastTransfer = &req
	return g.transferErr
}

func (g *fakeGateway) Balance(ctx context.Context, account string) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.balance, g.balanceErr
}

func (g *fakeGateway) VerifyName(ctx context.Context, account string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.verifyCalls = append(g.verifyCalls, account)
	if g.verifyErr != nil {
		return "", g.verifyErr
	}
	return g.names[account], nil
}

func (g *fakeGateway) Users(ctx context.Context) ([]domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.users, g.usersErr
}

func (g *fakeGateway) Transactions(ctx context.Context, account string) ([]domain.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transactions, g.transactionsErr
}

func (g *fakeGateway) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.notifications, g.notificationsErr
}

func (g *fakeGateway) MarkNotificationsRead(ctx context.Context, userID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.markReadCalls++
	return nil
}

func (g *fakeGateway) set(fn func(g *fakeGateway)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g)
}

func (g *fakeGateway) markReadCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.markReadCalls
}

func (g *fakeGateway) verified() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.verifyCalls))
	copy(out, g.verifyCalls)
	return out
}

func testUser() domain.User {
	return domain.User{
		ID:            "u-1",
		Fullname:      "Ade Balogun",
		Email:         "ade@meshpay.dev",
		Phone:         "09012345678",
		AccountNumber: "9012345678",
		Balance:       25000,
	}
}
