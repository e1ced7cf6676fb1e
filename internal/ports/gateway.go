package ports

import (
	"context"

	"github.com/meshpay/meshpay-client/internal/domain"
)

// Gateway is the single point of outbound calls to the MeshPay backend.
// Every method is one best-effort attempt: no retries, no caching. Backend
// rejections come back as *domain.APIError with the backend's message;
// transport failures wrap domain.ErrNetwork.
type Gateway interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.User, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error)
	Transfer(ctx context.Context, req domain.TransferRequest) error
	Balance(ctx context.Context, account string) (float64, error)
	VerifyName(ctx context.Context, account string) (string, error)
	Users(ctx context.Context) ([]domain.User, error)
	Transactions(ctx context.Context, account string) ([]domain.Transaction, error)
	Notifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string) error
}
