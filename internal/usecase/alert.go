package usecase

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/meshpay/meshpay-client/internal/domain"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "usecase").Logger()

type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
)

// Alert is a dismissible banner owned by a page controller.
type Alert struct {
	Type    AlertType
	Message string
}

func errorAlert(message string) *Alert {
	return &Alert{Type: AlertError, Message: message}
}

// alertMessage maps a gateway error onto the text shown to the user:
// backend messages verbatim, the fixed network message for transport
// failures, a generic fallback for anything else.
func alertMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, domain.ErrNetwork) {
		return domain.ErrNetwork.Error()
	}
	return "An unexpected error occurred"
}
