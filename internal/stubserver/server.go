// Package stubserver is an in-memory double of the MeshPay backend exposing
// the REST contract the client consumes. It backs the gateway tests and the
// meshpay-stub command; it is not the production backend.
package stubserver

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/meshpay/meshpay-client/internal/domain"
	"github.com/meshpay/meshpay-client/internal/pkg/format"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "stubserver").Logger()

type account struct {
	domain.User
	Password string
}

type Server struct {
	mu            sync.Mutex
	byEmail       map[string]*account
	byAccount     map[string]*account
	transactions  []domain.Transaction
	notifications map[string][]domain.Notification // keyed by user id
}

func New() *Server {
	return &Server{
		byEmail:       make(map[string]*account),
		byAccount:     make(map[string]*account),
		notifications: make(map[string][]domain.Notification),
	}
}

// Seed registers a user directly, for tests and the local dev command.
func (s *Server) Seed(fullname, email, password, phone string, balance float64) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct := &account{
		User: domain.User{
			ID:            uuid.NewString(),
			Fullname:      fullname,
			Email:         email,
			Phone:         phone,
			AccountNumber: format.AccountNumber(phone),
			Balance:       balance,
		},
		Password: password,
	}
	s.byEmail[email] = acct
	s.byAccount[acct.AccountNumber] = acct
	return acct.User
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/transfer", s.transfer).Methods(http.MethodPost)
	r.HandleFunc("/balance", s.balance).Methods(http.MethodGet)
	r.HandleFunc("/verify-name", s.verifyName).Methods(http.MethodGet)
	r.HandleFunc("/users", s.users).Methods(http.MethodGet)
	r.HandleFunc("/transactions", s.listTransactions).Methods(http.MethodGet)
	r.HandleFunc("/notifications", s.listNotifications).Methods(http.MethodGet)
	r.HandleFunc("/notifications/mark-read", s.markRead).Methods(http.MethodPost)
	return r
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.byEmail[req.Email]
	if !ok || acct.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		return
	}
	// Mimics the wrapped login payload of the deployed backend.
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    acct.User,
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[req.Email]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email already registered"})
		return
	}

	acct := &account{
		User: domain.User{
			ID:            uuid.NewString(),
			Fullname:      req.Fullname,
			Email:         req.Email,
			Phone:         req.Phone,
			AccountNumber: format.AccountNumber(req.Phone),
			Balance:       0,
		},
		Password: req.Password,
	}
	s.byEmail[req.Email] = acct
	s.byAccount[acct.AccountNumber] = acct
	logger.Info().Str("email", req.Email).Str("account", acct.AccountNumber).Msg("registered user")

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Registration Successful",
		"user":    acct.User,
	})
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	var req domain.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	from, ok := s.byAccount[req.From]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Sender account not found"})
		return
	}
	to, ok := s.byAccount[req.To]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Account not found"})
		return
	}
	if req.Amount <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid amount"})
		return
	}
	if from.Balance < req.Amount {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Insufficient funds"})
		return
	}

	from.Balance -= req.Amount
	to.Balance += req.Amount
	s.transactions = append(s.transactions, domain.Transaction{
		ID:           uuid.NewString(),
		From:         from.AccountNumber,
		To:           to.AccountNumber,
		Amount:       req.Amount,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Status:       domain.StatusSuccess,
		SenderName:   from.Fullname,
		ReceiverName: to.Fullname,
	})
	s.notifications[to.ID] = append(s.notifications[to.ID], domain.Notification{
		ID:      uuid.NewString(),
		Message: "You received " + format.Currency(req.Amount) + " from " + from.Fullname,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transfer successful"})
}

func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.byAccount[r.URL.Query().Get("account")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Account not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"amount": acct.Balance})
}

func (s *Server) verifyName(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.byAccount[r.URL.Query().Get("account")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Account not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"fullname": acct.Fullname})
}

func (s *Server) users(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]domain.User, 0, len(s.byEmail))
	for _, acct := range s.byEmail {
		list = append(list, acct.User)
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": list})
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	accountNumber := r.URL.Query().Get("accountNumber")

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	// Newest first, matching the deployed backend's ordering.
	for i := len(s.transactions) - 1; i >= 0; i-- {
		tx := s.transactions[i]
		if tx.From == accountNumber || tx.To == accountNumber {
			out = append(out, tx)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": out})
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.notifications[r.URL.Query().Get("userId")]
	if list == nil {
		list = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": list})
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.notifications[req.UserID]
	for i := range list {
		list[i].Read = true
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notifications marked as read"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("encode response")
	}
}
