package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshpay/meshpay-client/internal/adapters/session"
	"github.com/meshpay/meshpay-client/internal/domain"
)

func adminUsers() []domain.User {
	return []domain.User{
		{ID: "u-1", Fullname: "Ade Balogun", Email: "ade@meshpay.dev", Phone: "09012345678", AccountNumber: "9012345678", Balance: 25000},
		{ID: "u-2", Fullname: "Chiamaka Obi", Email: "chiamaka@meshpay.dev", Phone: "08023456789", AccountNumber: "8023456789", Balance: 5000},
		{ID: "u-3", Fullname: "MeshPay Admin", Email: "admin@meshpay.dev", Phone: "07034567890", AccountNumber: "7034567890", Balance: 0},
	}
}

func newMountedAdmin(t *testing.T, gw *fakeGateway) *AdminDashboard {
	t.Helper()
	store := session.NewMemStore()
	require.NoError(t, store.SetUser(testUser()))
	a := NewAdminDashboard(gw, store)
	_, redirect := a.Mount(context.Background())
	require.False(t, redirect)
	return a
}

func TestAdminMountWithoutSessionRedirects(t *testing.T) {
	a := NewAdminDashboard(newFakeGateway(), session.NewMemStore())
	page, redirect := a.Mount(context.Background())
	assert.True(t, redirect)
	assert.Equal(t, domain.PageWelcome, page)
}

func TestAdminSearch(t *testing.T) {
	gw := newFakeGateway()
	gw.users = adminUsers()
	a := newMountedAdmin(t, gw)

	assert.Len(t, a.Filtered(), 3)

	a.SetSearch("CHIAMAKA")
	filtered := a.Filtered()
	require.Len(t, filtered, 1, "name match is case-insensitive")
	assert.Equal(t, "u-2", filtered[0].ID)

	a.SetSearch("meshpay.dev")
	assert.Len(t, a.Filtered(), 3, "email substring matches everyone")

	a.SetSearch("0902345")
	assert.Empty(t, a.Filtered())

	a.SetSearch("7034567890")
	filtered = a.Filtered()
	require.Len(t, filtered, 1, "account number substring match")
	assert.Equal(t, "u-3", filtered[0].ID)
}

func TestAdminTotalBalance(t *testing.T) {
	gw := newFakeGateway()
	gw.users = adminUsers()
	a := newMountedAdmin(t, gw)
	assert.Equal(t, 30000.0, a.TotalBalance())
}

func TestAdminLoadErrors(t *testing.T) {
	t.Run("network", func(t *testing.T) {
		gw := newFakeGateway()
		gw.usersErr = domain.ErrNetwork
		a := newMountedAdmin(t, gw)
		require.NotNil(t, a.Alert)
		assert.Equal(t, "Network error occurred", a.Alert.Message)
	})

	t.Run("backend", func(t *testing.T) {
		gw := newFakeGateway()
		gw.usersErr = &domain.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}
		a := newMountedAdmin(t, gw)
		require.NotNil(t, a.Alert)
		assert.Equal(t, "Failed to fetch users", a.Alert.Message)
	})
}
