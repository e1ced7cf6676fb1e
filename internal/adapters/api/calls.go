package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/meshpay/meshpay-client/internal/domain"
)

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.User, error) {
	env := c.request(ctx, http.MethodPost, "/login", req)
	if err := env.err(); err != nil {
		return domain.User{}, err
	}
	return decodeUserPayload(env.Data)
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	env := c.request(ctx, http.MethodPost, "/register", req)
	if err := env.err(); err != nil {
		return domain.User{}, err
	}
	return decodeUserPayload(env.Data)
}

func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) error {
	return c.request(ctx, http.MethodPost, "/transfer", req).err()
}

func (c *Client) Balance(ctx context.Context, account string) (float64, error) {
	env := c.request(ctx, http.MethodGet, fmt.Sprintf("/balance?account=%s", url.QueryEscape(account)), nil)
	if err := env.err(); err != nil {
		return 0, err
	}
	// Two backend versions disagree on the field name.
	var payload struct {
		Amount  *float64 `json:"amount"`
		Balance *float64 `json:"balance"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return 0, decodeError(err)
	}
	switch {
	case payload.Amount != nil:
		return *payload.Amount, nil
	case payload.Balance != nil:
		return *payload.Balance, nil
	}
	return 0, &domain.APIError{Message: "An error occurred"}
}

func (c *Client) VerifyName(ctx context.Context, account string) (string, error) {
	env := c.request(ctx, http.MethodGet, fmt.Sprintf("/verify-name?account=%s", url.QueryEscape(account)), nil)
	if err := env.err(); err != nil {
		return "", err
	}
	var payload struct {
		Fullname string `json:"fullname"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return "", decodeError(err)
	}
	return payload.Fullname, nil
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	env := c.request(ctx, http.MethodGet, "/users", nil)
	if err := env.err(); err != nil {
		return nil, err
	}
	// Sometimes a bare array, sometimes {users: [...]}.
	var list []domain.User
	if err := json.Unmarshal(env.Data, &list); err == nil {
		return list, nil
	}
	var wrapped struct {
		Users []domain.User `json:"users"`
	}
	if err := json.Unmarshal(env.Data, &wrapped); err != nil {
		return nil, decodeError(err)
	}
	return wrapped.Users, nil
}

func (c *Client) Transactions(ctx context.Context, account string) ([]domain.Transaction, error) {
	env := c.request(ctx, http.MethodGet, fmt.Sprintf("/transactions?accountNumber=%s", url.QueryEscape(account)), nil)
	if err := env.err(); err != nil {
		return nil, err
	}
	var payload struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, decodeError(err)
	}
	return payload.Transactions, nil
}

func (c *Client) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	env := c.request(ctx, http.MethodGet, fmt.Sprintf("/notifications?userId=%s", url.QueryEscape(userID)), nil)
	if err := env.err(); err != nil {
		return nil, err
	}
	var payload struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, decodeError(err)
	}
	return payload.Notifications, nil
}

func (c *Client) MarkNotificationsRead(ctx context.Context, userID string) error {
	body := map[string]string{"userId": userID}
	return c.request(ctx, http.MethodPost, "/notifications/mark-read", body).err()
}

// decodeUserPayload accepts the two login/register payload shapes observed
// in the wild: a flat user record and a {user: {...}} wrapper.
func decodeUserPayload(data []byte) (domain.User, error) {
	var wrapped struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.User != nil {
		return *wrapped.User, nil
	}
	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return domain.User{}, decodeError(err)
	}
	return u, nil
}

func decodeError(err error) error {
	logger.Error().Err(err).Msg("failed to decode backend payload")
	return &domain.APIError{Message: "An error occurred"}
}
