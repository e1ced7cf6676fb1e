package usecase

import (
	"context"
	"errors"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/ports"
)

type Filter string

const (
	FilterAll      Filter = "all"
	FilterSent     Filter = "sent"
	FilterReceived Filter = "received"
)

type History struct {
	gw    ports.Gateway
	store ports.SessionStore

	user         domain.User
	transactions []domain.Transaction
	filter       Filter
	Alert        *Alert
}

func NewHistory(gw ports.Gateway, store ports.SessionStore) *History {
	return &History{gw: gw, store: store, filter: FilterAll}
}

func (h *History) Mount(ctx context.Context) (domain.Page, bool) {
	u := h.store.GetUser()
	if u == nil {
		return domain.PageWelcome, true
	}
	h.user = *u
	h.Load(ctx)
	return "", false
}

func (h *History) Load(ctx context.Context) {
	h.Alert = nil
	transactions, err := h.gw.Transactions(ctx, h.user.AccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNetwork) {
			h.Alert = errorAlert("Network error")
		} else {
			h.Alert = errorAlert(alertMessage(err))
		}
		return
	}
	h.transactions = transactions
}

func (h *History) Filter() Filter {
	return h.filter
}

func (h *History) SetFilter(f Filter) {
	switch f {
	case FilterAll, FilterSent, FilterReceived:
		h.filter = f
	}
}

func (h *History) User() domain.User {
	return h.user
}

// Filtered applies the sent/received filter against the session account.
func (h *History) Filtered() []domain.Transaction {
	if h.filter == FilterAll {
		return h.transactions
	}
	var out []domain.Transaction
	for _, tx := range h.transactions {
		switch h.filter {
		case FilterSent:
			if tx.From == h.user.AccountNumber {
				out = append(out, tx)
			}
		case FilterReceived:
			if tx.To == h.user.AccountNumber {
				out = append(out, tx)
			}
		}
	}
	return out
}
