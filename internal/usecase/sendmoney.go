package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/pkg/format"
	"github.com/meshpay/meshpay-client/internal/ports"
)

type Step string

const (
	StepForm    Step = "form"
	StepConfirm Step = "confirm"
	StepSuccess Step = "success"
)

const accountNumberLength = 10

// SendMoney is the three-step transfer wizard: form → confirm → success,
// with confirm → form the only backward transition and success terminal
// except for returning to the dashboard.
type SendMoney struct {
	gw    ports.Gateway
	store ports.SessionStore

	user          domain.User
	step          Step
	recipient     string
	amount        string
	amountValue   float64
	description   string
	recipientName string
	Alert         *Alert
}

func NewSendMoney(gw ports.Gateway, store ports.SessionStore) *SendMoney {
	return &SendMoney{gw: gw, store: store, step: StepForm}
}

// Mount guards against a missing session.
func (s *SendMoney) Mount() (domain.Page, bool) {
	u := s.store.GetUser()
	if u == nil {
		return domain.PageWelcome, true
	}
	s.user = *u
	return "", false
}

func (s *SendMoney) Step() Step            { return s.step }
func (s *SendMoney) Recipient() string     { return s.recipient }
func (s *SendMoney) Amount() string        { return s.amount }
func (s *SendMoney) AmountValue() float64  { return s.amountValue }
func (s *SendMoney) Description() string   { return s.description }
func (s *SendMoney) RecipientName() string { return s.recipientName }
func (s *SendMoney) Sender() domain.User   { return s.user }

// SetRecipient keeps only digits, caps the input at 10 characters and
// triggers name verification as soon as exactly 10 digits are present.
func (s *SendMoney) SetRecipient(ctx context.Context, v string) {
	digits := keepDigits(v)
	if len(digits) > accountNumberLength {
		digits = digits[:accountNumberLength]
	}
	s.recipient = digits
	s.recipientName = ""
	if len(digits) == accountNumberLength {
		s.verifyRecipient(ctx, digits)
	}
}

func (s *SendMoney) verifyRecipient(ctx context.Context, account string) {
	name, err := s.gw.VerifyName(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrNetwork) {
			s.Alert = errorAlert("Error verifying account")
		} else {
			s.Alert = errorAlert("Account not found")
		}
		return
	}
	if name == "" {
		s.Alert = errorAlert("Account not found")
		return
	}
	s.recipientName = name
}

func (s *SendMoney) SetAmount(v string) {
	var b strings.Builder
	for _, r := range v {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	s.amount = b.String()
}

func (s *SendMoney) SetDescription(v string) {
	s.description = v
}

// Continue guards the form → confirm transition: 10-digit recipient, a
// positive amount and a verified recipient name, checked in that order.
func (s *SendMoney) Continue() bool {
	if len(s.recipient) != accountNumberLength {
		s.Alert = errorAlert("Please enter a valid 10-digit account number")
		return false
	}
	amount, err := strconv.ParseFloat(s.amount, 64)
	if err != nil || amount <= 0 {
		s.Alert = errorAlert("Please enter a valid amount")
		return false
	}
	if s.recipientName == "" {
		s.Alert = errorAlert("Please verify the recipient account.")
		return false
	}

	s.amountValue = amount
	s.step = StepConfirm
	s.Alert = nil
	return true
}

// Back is the confirm → form transition; it is a no-op elsewhere.
func (s *SendMoney) Back() {
	if s.step == StepConfirm {
		s.step = StepForm
	}
}

// Confirm performs the transfer exactly once. On backend failure the wizard
// stays on confirm with the backend message; on success it advances and
// never retries.
func (s *SendMoney) Confirm(ctx context.Context) bool {
	if s.step != StepConfirm {
		return false
	}
	s.Alert = nil

	req := domain.TransferRequest{
		From:   format.AccountNumber(s.user.Phone),
		To:     s.recipient,
		Amount: s.amountValue,
	}
	if err := s.gw.Transfer(ctx, req); err != nil {
		s.Alert = errorAlert(alertMessage(err))
		return false
	}

	s.step = StepSuccess
	return true
}

func keepDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
