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

func newMountedSendMoney(t *testing.T, gw *fakeGateway) *SendMoney {
	t.Helper()
	store := session.NewMemStore()
	require.NoError(t, store.SetUser(testUser()))
	s := NewSendMoney(gw, store)
	_, redirect := s.Mount()
	require.False(t, redirect)
	return s
}

func TestSendMoneyMountWithoutSessionRedirects(t *testing.T) {
	s := NewSendMoney(newFakeGateway(), session.NewMemStore())
	page, redirect := s.Mount()
	assert.True(t, redirect)
	assert.Equal(t, domain.PageWelcome, page)
}

func TestSetRecipientKeepsDigitsAndCapsAtTen(t *testing.T) {
	gw := newFakeGateway()
	gw.names["8023456789"] = "Chiamaka Obi"
	s := newMountedSendMoney(t, gw)

	s.SetRecipient(context.Background(), "80-234.567 8912345")
	assert.Equal(t, "8023456789", s.Recipient())
	assert.Equal(t, "Chiamaka Obi", s.RecipientName())
}

func TestSetRecipientVerifiesOnlyAtTenDigits(t *testing.T) {
	gw := newFakeGateway()
	gw.names["8023456789"] = "Chiamaka Obi"
	s := newMountedSendMoney(t, gw)
	ctx := context.Background()

	s.SetRecipient(ctx, "80234")
	assert.Empty(t, gw.verified())
	assert.Empty(t, s.RecipientName())

	s.SetRecipient(ctx, "8023456789")
	assert.Equal(t, []string{"8023456789"}, gw.verified())
}

func TestSetRecipientEditInvalidatesVerification(t *testing.T) {
	gw := newFakeGateway()
	gw.names["8023456789"] = "Chiamaka Obi"
	s := newMountedSendMoney(t, gw)
	ctx := context.Background()

	s.SetRecipient(ctx, "8023456789")
	require.Equal(t, "Chiamaka Obi", s.RecipientName())

	s.SetRecipient(ctx, "802345678")
	assert.Empty(t, s.RecipientName())
}

func TestVerifyRecipientErrors(t *testing.T) {
	t.Run("network failure", func(t *testing.T) {
		gw := newFakeGateway()
		gw.verifyErr = domain.ErrNetwork
		s := newMountedSendMoney(t, gw)

		s.SetRecipient(context.Background(), "8023456789")
		require.NotNil(t, s.Alert)
		assert.Equal(t, "Error verifying account", s.Alert.Message)
	})

	t.Run("unknown account", func(t *testing.T) {
		gw := newFakeGateway()
		gw.verifyErr = &domain.APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
		s := newMountedSendMoney(t, gw)

		s.SetRecipient(context.Background(), "8023456789")
		require.NotNil(t, s.Alert)
		assert.Equal(t, "Account not found", s.Alert.Message)
	})

	t.Run("empty name in payload", func(t *testing.T) {
		gw := newFakeGateway()
		s := newMountedSendMoney(t, gw)

		s.SetRecipient(context.Background(), "8023456789")
		require.NotNil(t, s.Alert)
		assert.Equal(t, "Account not found", s.Alert.Message)
		assert.Empty(t, s.RecipientName())
	})
}

func TestContinueGuardsInOrder(t *testing.T) {
	gw := newFakeGateway()
	s := newMountedSendMoney(t, gw)
	ctx := context.Background()

	assert.False(t, s.Continue())
	assert.Equal(t, "Please enter a valid 10-digit account number", s.Alert.Message)

	gw.set(func(g *fakeGateway) {
		g.verifyErr = &domain.APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
	})
	s.SetRecipient(ctx, "8023456789")
	assert.False(t, s.Continue())
	assert.Equal(t, "Please enter a valid amount", s.Alert.Message)

	s.SetAmount("0")
	assert.False(t, s.Continue())
	assert.Equal(t, "Please enter a valid amount", s.Alert.Message)

	s.SetAmount("500")
	assert.False(t, s.Continue())
	assert.Equal(t, "Please verify the recipient account.", s.Alert.Message)
	assert.Equal(t, StepForm, s.Step())
}

func TestContinueAdvancesToConfirm(t *testing.T) {
	gw := newFakeGateway()
	gw.names["8023456789"] = "Chiamaka Obi"
	s := newMountedSendMoney(t, gw)

	s.SetRecipient(context.Background(), "8023456789")
	s.SetAmount("₦1,500.50")
	assert.Equal(t, "1500.50", s.Amount(), "non-numeric characters stripped")

	require.True(t, s.Continue())
	assert.Equal(t, StepConfirm, s.Step())
	assert.Equal(t, 1500.50, s.AmountValue())
	assert.Nil(t, s.Alert)
}

func TestBackOnlyFromConfirm(t *testing.T) {
	gw := newFakeGateway()
	gw.names["8023456789"] = "Chiamaka Obi"
	s := newMountedSendMoney(t, gw)

	s.Back()
	assert.Equal(t, StepForm, s.Step())

	s.SetRecipient(context.Background(), "8023456789")
	s.SetAmount("500")
	require.True(t, s.Continue())
	s.Back()
	assert.Equal(t, StepForm, s.Step())
}

func TestConfirmFailureStaysOnConfirm(t *testing.T) {
	gw := newFakeGateway()
	gw.names["8023456789"] = "Chiamaka Obi"
	gw.transferErr = &domain.APIError{StatusCode: http.StatusBadRequest, Message: "Insufficient funds"}
	s := newMountedSendMoney(t, gw)

	s.SetRecipient(context.Background(), "8023456789")
	s.SetAmount("500")
	require.True(t, s.Continue())

	assert.False(t, s.Confirm(context.Background()))
	assert.Equal(t, StepConfirm, s.Step())
	require.NotNil(t, s.Alert)
	assert.Equal(t, "Insufficient funds", s.Alert.Message)
}

func TestConfirmSuccessDerivesSenderAccountFromPhone(t *testing.T) {
	gw := newFakeGateway()
	gw.names["8023456789"] = "Chiamaka Obi"
	s := newMountedSendMoney(t, gw)

	s.SetRecipient(context.Background(), "8023456789")
	s.SetAmount("500")
	require.True(t, s.Continue())
	require.True(t, s.Confirm(context.Background()))
	assert.Equal(t, StepSuccess, s.Step())

	require.NotNil(t, gw.lastTransfer)
	assert.Equal(t, "9012345678", gw.lastTransfer.From, "leading zero dropped from the sender phone")
	assert.Equal(t, "8023456789", gw.lastTransfer.To)
	assert.Equal(t, 500.0, gw.lastTransfer.Amount)

	// Confirm is a no-op once past the confirm step.
	assert.False(t, s.Confirm(context.Background()))
	assert.Equal(t, StepSuccess, s.Step())
}
